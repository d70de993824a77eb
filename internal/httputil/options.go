package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func allow(c *gin.Context, methods string) {
	c.Header("allow", methods)
	c.Status(http.StatusNoContent)
}

func OptionsGet(c *gin.Context) {
	allow(c, "GET")
}

func OptionsPost(c *gin.Context) {
	allow(c, "POST")
}

func OptionsGetPost(c *gin.Context) {
	allow(c, "GET, POST")
}

func OptionsPatchDelete(c *gin.Context) {
	allow(c, "PATCH, DELETE")
}

func OptionsGetPatchDelete(c *gin.Context) {
	allow(c, "GET, PATCH, DELETE")
}

func OptionsGetPut(c *gin.Context) {
	allow(c, "GET, PUT")
}

func OptionsGetPostPutPatch(c *gin.Context) {
	allow(c, "GET, POST, PUT, PATCH")
}
