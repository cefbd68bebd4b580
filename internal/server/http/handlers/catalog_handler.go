package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notemart/notemart/internal/server/http/dto"
)

// CatalogHandler manages board, stream and subject endpoints. Listings are
// public; mutations are admin-only and wired behind AdminRequired.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// ListBoards handles GET /api/boards.
func (h *CatalogHandler) ListBoards(c *gin.Context) {
	boards, err := h.facade.ListBoards(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKList(len(boards), dto.FromBoards(boards)))
}

// GetBoard handles GET /api/boards/:id.
func (h *CatalogHandler) GetBoard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	board, err := h.facade.GetBoard(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.FromBoard(board)))
}

// CreateBoard handles POST /api/boards.
func (h *CatalogHandler) CreateBoard(c *gin.Context) {
	var req dto.BoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("name is required"))
		return
	}

	board, err := h.facade.CreateBoard(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.FromBoard(board)))
}

// UpdateBoard handles PUT /api/boards/:id.
func (h *CatalogHandler) UpdateBoard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.BoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("name is required"))
		return
	}

	board, err := h.facade.UpdateBoard(c.Request.Context(), id, req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.FromBoard(board)))
}

// DeleteBoard handles DELETE /api/boards/:id.
func (h *CatalogHandler) DeleteBoard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeactivateBoard(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("board deleted", nil))
}

// ListStreams handles GET /api/streams.
func (h *CatalogHandler) ListStreams(c *gin.Context) {
	streams, err := h.facade.ListStreams(c.Request.Context(), queryID(c, "boardId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKList(len(streams), dto.FromStreams(streams)))
}

// GetStream handles GET /api/streams/:id.
func (h *CatalogHandler) GetStream(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	stream, err := h.facade.GetStream(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.FromStream(stream)))
}

// CreateStream handles POST /api/streams.
func (h *CatalogHandler) CreateStream(c *gin.Context) {
	var req dto.StreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("boardId and name are required"))
		return
	}

	stream, err := h.facade.CreateStream(c.Request.Context(), req.BoardID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.FromStream(stream)))
}

// UpdateStream handles PUT /api/streams/:id.
func (h *CatalogHandler) UpdateStream(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.StreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("name is required"))
		return
	}

	stream, err := h.facade.UpdateStream(c.Request.Context(), id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.FromStream(stream)))
}

// DeleteStream handles DELETE /api/streams/:id.
func (h *CatalogHandler) DeleteStream(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeactivateStream(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("stream deleted", nil))
}

// ListSubjects handles GET /api/subjects.
func (h *CatalogHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.facade.ListSubjects(c.Request.Context(), queryID(c, "streamId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKList(len(subjects), dto.FromSubjects(subjects)))
}

// GetSubject handles GET /api/subjects/:id.
func (h *CatalogHandler) GetSubject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	subject, err := h.facade.GetSubject(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.FromSubject(subject)))
}

// CreateSubject handles POST /api/subjects.
func (h *CatalogHandler) CreateSubject(c *gin.Context) {
	var req dto.SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("streamId and name are required"))
		return
	}

	subject, err := h.facade.CreateSubject(c.Request.Context(), req.StreamID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.FromSubject(subject)))
}

// UpdateSubject handles PUT /api/subjects/:id.
func (h *CatalogHandler) UpdateSubject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("name is required"))
		return
	}

	subject, err := h.facade.UpdateSubject(c.Request.Context(), id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.FromSubject(subject)))
}

// DeleteSubject handles DELETE /api/subjects/:id.
func (h *CatalogHandler) DeleteSubject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeactivateSubject(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("subject deleted", nil))
}
