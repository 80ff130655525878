//go:build unit

package api_test

import (
	"encoding/json"

	"egress/internal/handler/pages"

	"github.com/gin-gonic/gin"
)

func jsonDecode(b []byte, v any) error {
	return json.Unmarshal(b, v)
}

func newHTMLRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	tmpl, err := pages.Templates()
	if err != nil {
		panic(err)
	}
	r.SetHTMLTemplate(tmpl)
	return r
}
