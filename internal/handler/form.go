package handler

import (
	"github.com/gin-gonic/gin"
)

// formFields flattens a multipart or url-encoded form post into the
// string-keyed field set the mutation services consume. Repeated keys
// keep their first value.
func formFields(c *gin.Context) map[string]string {
	if err := c.Request.ParseMultipartForm(1 << 20); err != nil {
		// Not multipart; fall back to a plain form body.
		_ = c.Request.ParseForm()
	}
	fields := make(map[string]string, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}
	return fields
}
