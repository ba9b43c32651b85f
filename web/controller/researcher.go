package controller

import (
	"net/http"

	"bioanalytica/web/entity"
	"bioanalytica/web/service"

	"github.com/gin-gonic/gin"
)

// ResearcherController serves the read-only researcher directory to any
// authenticated user.
type ResearcherController struct {
	userService service.UserService
}

func NewResearcherController(g *gin.RouterGroup) *ResearcherController {
	a := &ResearcherController{}
	a.initRouter(g)
	return a
}

func (a *ResearcherController) initRouter(g *gin.RouterGroup) {
	g.GET("/researchers", a.list)
}

func (a *ResearcherController) list(c *gin.Context) {
	researchers, err := a.userService.ListResearchers()
	if err != nil {
		jsonInternalError(c, "researcher.listFailed", err)
		return
	}

	c.JSON(http.StatusOK, entity.ResearcherList{Success: true, Researchers: researchers})
}
