package v1

import (
	"errors"
	"net/http"

	"valletta-hr-backend/internal/delivery/http/response"
	"valletta-hr-backend/pkg/apperror"
	"valletta-hr-backend/pkg/upload"

	"github.com/gin-gonic/gin"
)

type FileHandler struct {
	store *upload.Store
}

func NewFileHandler(rg *gin.RouterGroup, store *upload.Store) {
	handler := &FileHandler{store: store}

	files := rg.Group("/files")
	{
		files.POST("/upload", handler.Upload)
		files.DELETE("/:filename", handler.Delete)
	}
}

// UploadResult is the payload returned after a successful upload.
type UploadResult struct {
	FileName string `json:"fileName"`
	FileURL  string `json:"fileUrl"`
}

// Upload godoc
// @Summary      Upload a resume file
// @Description  Multipart upload, field "file". 5MB cap, PDF/DOC/DOCX/TXT only; anything else is rejected before touching disk.
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Document to store"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /files/upload [post]
func (h *FileHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("Файл не был загружен"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.Error(err)
		return
	}
	defer f.Close()

	storedName, err := h.store.Save(
		fileHeader.Filename, f, fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		if errors.Is(err, upload.ErrTooLarge) || errors.Is(err, upload.ErrUnsupportedType) || errors.Is(err, upload.ErrBadName) {
			c.Error(apperror.BadRequest(err.Error()))
			return
		}
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "File uploaded", UploadResult{
		FileName: fileHeader.Filename,
		FileURL:  "/uploads/" + storedName,
	})
}

// Delete godoc
// @Summary      Delete an uploaded file
// @Tags         files
// @Produce      json
// @Param        filename  path  string  true  "Stored file name"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /files/{filename} [delete]
func (h *FileHandler) Delete(c *gin.Context) {
	filename := c.Param("filename")

	if err := h.store.Delete(filename); err != nil {
		switch {
		case errors.Is(err, upload.ErrNotFound):
			c.Error(apperror.NotFound("File not found"))
		case errors.Is(err, upload.ErrBadName):
			c.Error(apperror.BadRequest("Некорректное имя файла"))
		default:
			c.Error(err)
		}
		return
	}

	response.Success(c, http.StatusOK, "File deleted", nil)
}
