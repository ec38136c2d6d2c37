package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"eizer/internal/respond"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Optional tracks JSON field presence so partial updates can tell an absent
// field (leave untouched) from an explicit null (clear the column).
type Optional[T any] struct {
	Set   bool
	Valid bool // false when the field was explicitly null
	Value T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// apply writes the field into a column map: the value when present, nil
// (SQL NULL) when explicitly null, nothing when absent.
func (o Optional[T]) apply(data map[string]any, column string) {
	if !o.Set {
		return
	}
	if !o.Valid {
		data[column] = nil
		return
	}
	data[column] = o.Value
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		respond.Error(c, http.StatusBadRequest, respond.CodeBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func sessionUserID(c *gin.Context) uint {
	sess := sessions.Default(c)
	uid, _ := sess.Get("user_id").(uint)
	return uid
}

func badRequest(c *gin.Context, msg string) {
	respond.Error(c, http.StatusBadRequest, respond.CodeBadRequest, msg)
}

func internalError(c *gin.Context, msg string) {
	respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, msg)
}
