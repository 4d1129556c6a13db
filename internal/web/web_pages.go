// Package web provides the HTTP server and routing demo for go-arcade
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const contentTypeHTML = "text/html; charset=utf-8"

// homePage lists the demo routes so the lesson is browsable from /
const homeHTML = `<h1>go-arcade</h1>
<p>A tiny gin routing lesson. Try these:</p>
<ul>
<li><a href="/hello">/hello</a> - static HTML</li>
<li><a href="/potato">/potato</a> - static HTML</li>
<li><a href="/dice">/dice</a> - JSON dice roll</li>
<li><a href="/add/1/2">/add/:num1/:num2</a> - JSON sum of two path segments</li>
<li><a href="/games/1">/games/:id</a> - JSON game lookup</li>
<li><a href="/api/v1/games">/api/v1/games</a> - paginated game list</li>
<li><a href="/api/v1/stats">/api/v1/stats</a> - service stats</li>
</ul>`

func (s *WebServer) homePage(c *gin.Context) {
	c.Data(http.StatusOK, contentTypeHTML, []byte(homeHTML))
}

func (s *WebServer) helloPage(c *gin.Context) {
	c.Data(http.StatusOK, contentTypeHTML, []byte("<h2>Hello <em>World</em>!</h2>"))
}

func (s *WebServer) potatoPage(c *gin.Context) {
	c.Data(http.StatusOK, contentTypeHTML, []byte("<p>Boil 'em, mash 'em, stick 'em in a stew</p>"))
}
