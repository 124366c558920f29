package api

import (
	"net/http"
	"strconv"

	reqdto "pos-terminal/internal/handler/dto/request"
	"pos-terminal/internal/handler/httperr"
	"pos-terminal/internal/usecase/commands"
	"pos-terminal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	cmds commands.SettingsCommands
	q    queries.SettingsQueries
}

func NewSettingsHandler(cmds commands.SettingsCommands, q queries.SettingsQueries) *SettingsHandler {
	return &SettingsHandler{cmds: cmds, q: q}
}

// @Summary Get preferences
// @Tags settings
// @Produce json
// @Param systemDark query bool false "Whether the till's system theme is dark"
// @Success 200 {object} settings.Preferences
// @Router /api/v1/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	systemDark, _ := strconv.ParseBool(c.Query("systemDark"))
	prefs, err := h.q.GetPreferences(c.Request.Context(), systemDark)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load preferences")
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// @Summary Update preferences
// @Description Apply any subset of the preference flags
// @Tags settings
// @Accept json
// @Produce json
// @Param request body reqdto.PreferencesRequest true "Preferences"
// @Success 200 {object} settings.Preferences
// @Router /api/v1/settings [patch]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req reqdto.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	prefs, err := h.cmds.Update(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to save preferences")
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// @Summary Follow system theme
// @Tags settings
// @Produce json
// @Param systemDark query bool false "Whether the till's system theme is dark"
// @Success 200 {object} settings.Preferences
// @Router /api/v1/settings/theme/system [post]
func (h *SettingsHandler) ResetTheme(c *gin.Context) {
	systemDark, _ := strconv.ParseBool(c.Query("systemDark"))
	prefs, err := h.cmds.ResetToSystemTheme(c.Request.Context(), systemDark)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to save preferences")
		return
	}
	c.JSON(http.StatusOK, prefs)
}
