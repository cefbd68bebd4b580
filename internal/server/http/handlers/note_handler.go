package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/notemart/notemart/internal/domain/model"
	"github.com/notemart/notemart/internal/pkg/files"
	"github.com/notemart/notemart/internal/server/http/dto"
)

// NoteHandler manages note catalog and download endpoints.
type NoteHandler struct {
	facade NoteFacade
	store  *files.Store
}

// NewNoteHandler constructs NoteHandler.
func NewNoteHandler(facade NoteFacade, store *files.Store) *NoteHandler {
	return &NoteHandler{facade: facade, store: store}
}

// List handles GET /api/notes.
func (h *NoteHandler) List(c *gin.Context) {
	filter := model.NoteFilter{
		SubjectID: queryID(c, "subjectId"),
		StreamID:  queryID(c, "streamId"),
		BoardID:   queryID(c, "boardId"),
		Search:    c.Query("search"),
	}

	notes, err := h.facade.ListNotes(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKList(len(notes), dto.FromNoteViews(notes)))
}

// Get handles GET /api/notes/:id. When the caller is authenticated the
// response reports whether they already purchased the note.
func (h *NoteHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, purchased, err := h.facade.GetNote(c.Request.Context(), id, CurrentUserID(c), CurrentUserRole(c))
	if err != nil {
		respondError(c, err)
		return
	}

	note := dto.FromNoteView(view)
	if CurrentUserID(c) > 0 {
		note.Purchased = &purchased
	}
	c.JSON(http.StatusOK, dto.OK(note))
}

func (h *NoteHandler) noteFromForm(c *gin.Context, existing *model.Note) (*model.Note, bool) {
	note := &model.Note{}
	if existing != nil {
		*note = *existing
	}

	if v, ok := c.GetPostForm("title"); ok || existing == nil {
		note.Title = v
	}
	if v, ok := c.GetPostForm("description"); ok || existing == nil {
		note.Description = v
	}

	if v := c.PostForm("subjectId"); v != "" || existing == nil {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Fail("invalid subjectId"))
			return nil, false
		}
		note.SubjectID = id
	}
	if v := c.PostForm("price"); v != "" || existing == nil {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Fail("invalid price"))
			return nil, false
		}
		note.Price = price
	}
	if v := c.PostForm("pages"); v != "" || existing == nil {
		pages, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Fail("invalid pages"))
			return nil, false
		}
		note.Pages = pages
	}

	if fh, err := c.FormFile("file"); err == nil {
		name, fileURL, saveErr := h.store.SaveNote(fh)
		if saveErr != nil {
			respondError(c, saveErr)
			return nil, false
		}
		note.FileName = name
		note.FileURL = fileURL
	} else if existing == nil {
		c.JSON(http.StatusBadRequest, dto.Fail("note file is required"))
		return nil, false
	}

	if fh, err := c.FormFile("image"); err == nil {
		imageURL, saveErr := h.store.SaveImage(fh)
		if saveErr != nil {
			respondError(c, saveErr)
			return nil, false
		}
		note.PreviewImage = imageURL
	}

	return note, true
}

// Create handles POST /api/notes with a multipart form.
func (h *NoteHandler) Create(c *gin.Context) {
	note, ok := h.noteFromForm(c, nil)
	if !ok {
		return
	}
	note.CreatedBy = CurrentUserID(c)

	created, err := h.facade.CreateNote(c.Request.Context(), note)
	if err != nil {
		respondError(c, err)
		return
	}

	view, _, err := h.facade.GetNote(c.Request.Context(), created.ID, CurrentUserID(c), CurrentUserRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.FromNoteView(view)))
}

// Update handles PUT /api/notes/:id with a multipart form. Omitted fields
// keep their stored values.
func (h *NoteHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, _, err := h.facade.GetNote(c.Request.Context(), id, CurrentUserID(c), CurrentUserRole(c))
	if err != nil {
		respondError(c, err)
		return
	}

	note, ok := h.noteFromForm(c, &view.Note)
	if !ok {
		return
	}
	note.ID = id

	if _, err := h.facade.UpdateNote(c.Request.Context(), note); err != nil {
		respondError(c, err)
		return
	}

	updated, _, err := h.facade.GetNote(c.Request.Context(), id, CurrentUserID(c), CurrentUserRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.FromNoteView(updated)))
}

// Delete handles DELETE /api/notes/:id. The note is deactivated, not
// removed: buyers keep their download access.
func (h *NoteHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeactivateNote(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("note deleted", nil))
}

// Download handles GET /api/notes/:id/download. Only buyers and admins pass.
func (h *NoteHandler) Download(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	note, err := h.facade.ResolveDownload(c.Request.Context(), id, CurrentUserID(c), CurrentUserRole(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.FileAttachment(h.store.NotePath(note.FileName), note.Title+".pdf")
}
