package http

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"web3-todo-list/internal/task"
	"web3-todo-list/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Count(c *gin.Context)
	Detail(c *gin.Context)
	Create(c *gin.Context)
	Complete(c *gin.Context)
	List(c *gin.Context)
	Stats(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) Handler {
	useJSONFieldNames()
	return &handler{
		l:  l,
		uc: uc,
	}
}

var tagNameOnce sync.Once

// useJSONFieldNames makes binding errors report JSON field names.
func useJSONFieldNames() {
	tagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}
