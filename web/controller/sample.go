package controller

import (
	"errors"
	"net/http"
	"strconv"

	"bioanalytica/web/entity"
	"bioanalytica/web/middleware"
	"bioanalytica/web/service"

	"github.com/gin-gonic/gin"
)

// SampleForm is the sample creation schema. Only the name is required;
// quantity is a nullable number, never a string.
type SampleForm struct {
	SampleName  string   `json:"sample_name" binding:"required"`
	SampleType  string   `json:"sample_type"`
	Quantity    *float64 `json:"quantity"`
	Description string   `json:"description"`
}

// SampleController handles owner-scoped sample CRUD. All routes sit behind
// the bearer-token guard installed by the caller.
type SampleController struct {
	sampleService service.SampleService
}

func NewSampleController(g *gin.RouterGroup) *SampleController {
	a := &SampleController{}
	a.initRouter(g)
	return a
}

func (a *SampleController) initRouter(g *gin.RouterGroup) {
	g.POST("/samples", a.create)
	g.GET("/samples", a.list)
	g.DELETE("/samples/:id", a.delete)
}

func (a *SampleController) create(c *gin.Context) {
	var form SampleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonError(c, http.StatusBadRequest, "sample.nameRequired")
		return
	}

	claims := middleware.GetClaims(c)
	sample, err := a.sampleService.Create(claims.Id, form.SampleName, form.SampleType, form.Quantity, form.Description)
	if errors.Is(err, service.ErrValidation) {
		jsonError(c, http.StatusBadRequest, "sample.nameRequired")
		return
	} else if err != nil {
		jsonInternalError(c, "sample.createFailed", err)
		return
	}

	c.JSON(http.StatusOK, entity.SampleResult{Success: true, Sample: sample})
}

func (a *SampleController) list(c *gin.Context) {
	claims := middleware.GetClaims(c)
	samples, err := a.sampleService.List(claims.Id)
	if err != nil {
		jsonInternalError(c, "sample.listFailed", err)
		return
	}

	c.JSON(http.StatusOK, entity.SampleList{Success: true, Samples: samples})
}

// delete removes the caller's sample. A malformed id, a missing row and a
// row owned by someone else all answer 404.
func (a *SampleController) delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusNotFound, "sample.notFound")
		return
	}

	claims := middleware.GetClaims(c)
	err = a.sampleService.Delete(claims.Id, id)
	if errors.Is(err, service.ErrNotFound) {
		jsonError(c, http.StatusNotFound, "sample.notFound")
		return
	} else if err != nil {
		jsonInternalError(c, "sample.deleteFailed", err)
		return
	}

	c.JSON(http.StatusOK, entity.OK{Success: true})
}
