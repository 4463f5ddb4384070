package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/media?folder=
func (a *API) ListMedia(c *gin.Context) {
	rows, err := a.media(c).List(c.Request.Context(), c.Query("folder"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// POST /api/admin/media (multipart: file, folder, alt_text)
func (a *API) UploadMedia(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "file_required", "multipart field \"file\" is required", err.Error())
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "file_unreadable", "cannot read upload", err.Error())
		return
	}
	defer f.Close()

	asset, err := a.media(c).Upload(c.Request.Context(),
		c.PostForm("folder"), fh.Filename, c.PostForm("alt_text"), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	created(c, asset)
}

type altRequest struct {
	AltText string `json:"alt_text"`
}

func (a *API) UpdateMediaAlt(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req altRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	asset, err := a.media(c).UpdateAlt(c.Request.Context(), id, strings.TrimSpace(req.AltText))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

func (a *API) DeleteMedia(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := a.media(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	noContent(c)
}
