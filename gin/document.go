package gin

import (
	"net/http"
	"strings"

	"lexdoc"

	"github.com/gin-gonic/gin"
)

type saveFileRequest struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

func (s *Server) handleSaveFile(c *gin.Context) {
	var req saveFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.error(c, lexdoc.Errorf(lexdoc.EINVALID, "invalid request body: %v", err))
		return
	}

	doc := &lexdoc.Document{
		Name:    req.Name,
		URL:     req.URL,
		Content: req.Content,
	}
	if err := s.DocumentService.CreateDocument(c.Request.Context(), doc); err != nil {
		s.error(c, err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

func (s *Server) handleFileContent(c *gin.Context) {
	doc, err := s.findDocumentParam(c)
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": doc.Content})
}

func (s *Server) handleFileCorrectedContent(c *gin.Context) {
	doc, err := s.findDocumentParam(c)
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": doc.CorrectedContent})
}

func (s *Server) handleDownloadCorrectedTxt(c *gin.Context) {
	doc, err := s.findDocumentParam(c)
	if err != nil {
		s.error(c, err)
		return
	}

	// Absent corrected text downloads as the literal "NULL".
	body := "NULL"
	if doc.CorrectedContent != nil {
		body = *doc.CorrectedContent
	}

	base := strings.TrimSuffix(doc.Name, ".pdf")
	c.Header("Content-Disposition", `attachment; filename="`+base+`_corrected.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}

type saveKeywordsRequest struct {
	FileID   string   `json:"fileId"`
	Keywords []string `json:"keywords"`
}

func (s *Server) handleSaveKeywords(c *gin.Context) {
	var req saveKeywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.error(c, lexdoc.Errorf(lexdoc.EINVALID, "invalid request body: %v", err))
		return
	}

	keywords, err := s.DocumentService.ReplaceKeywords(c.Request.Context(), req.FileID, req.Keywords)
	if err != nil {
		s.error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"keywords": keywords})
}

type saveChatHistoryRequest struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
	FileID string `json:"fileId"`
}

func (s *Server) handleSaveChatHistory(c *gin.Context) {
	var req saveChatHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.error(c, lexdoc.Errorf(lexdoc.EINVALID, "invalid request body: %v", err))
		return
	}

	msg := &lexdoc.ChatMessage{
		Prompt: req.Prompt,
		Answer: req.Answer,
	}
	if req.FileID != "" {
		msg.DocumentID = &req.FileID
	}

	if err := s.ChatService.SaveChatMessage(c.Request.Context(), msg); err != nil {
		s.error(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

type saveCorrectedTextRequest struct {
	FileID        string `json:"fileId"`
	CorrectedText string `json:"correctedText"`
}

func (s *Server) handleSaveCorrectedText(c *gin.Context) {
	var req saveCorrectedTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.error(c, lexdoc.Errorf(lexdoc.EINVALID, "invalid request body: %v", err))
		return
	}

	doc, err := s.DocumentService.SetCorrectedContent(c.Request.Context(), req.FileID, req.CorrectedText)
	if err != nil {
		s.error(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

func (s *Server) findDocumentParam(c *gin.Context) (*lexdoc.Document, error) {
	fileID := c.Query("fileId")
	if fileID == "" {
		return nil, lexdoc.Errorf(lexdoc.EINVALID, "fileId required")
	}
	return s.DocumentService.FindDocumentByID(c.Request.Context(), fileID)
}
