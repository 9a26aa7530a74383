package gin

import (
	"encoding/base64"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"lexdoc"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleDownloadPDF(c *gin.Context) {
	fileURL := c.Query("url")
	if fileURL == "" {
		s.error(c, lexdoc.Errorf(lexdoc.EINVALID, "url required"))
		return
	}
	filename := filepath.Base(c.Query("filename"))
	if filename == "." || filename == string(filepath.Separator) {
		s.error(c, lexdoc.Errorf(lexdoc.EINVALID, "filename required"))
		return
	}

	data, err := s.Downloader.Download(c.Request.Context(), fileURL)
	if err != nil {
		s.error(c, err)
		return
	}

	path := filepath.Join(s.config.DownloadsDir, filename)
	if err := os.MkdirAll(s.config.DownloadsDir, 0o755); err != nil {
		s.error(c, lexdoc.Errorf(lexdoc.EINTERNAL, "failed to save file: %v", err))
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.error(c, lexdoc.Errorf(lexdoc.EINTERNAL, "failed to save file: %v", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "file downloaded",
		"filePath": path,
	})
}

func (s *Server) handleDownloadPDFReturn(c *gin.Context) {
	fileURL := c.Query("url")
	if fileURL == "" {
		s.error(c, lexdoc.Errorf(lexdoc.EINVALID, "url required"))
		return
	}

	data, err := s.Downloader.Download(c.Request.Context(), fileURL)
	if err != nil {
		s.error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pdfBase64": base64.StdEncoding.EncodeToString(data),
	})
}

func (s *Server) handleScrapePDFs(c *gin.Context) {
	startURL := c.Query("startUrl")
	if startURL == "" {
		s.error(c, lexdoc.Errorf(lexdoc.EINVALID, "startUrl required"))
		return
	}

	links, err := s.Scraper.ScrapePDFLinks(c.Request.Context(), startURL)
	if err != nil {
		s.error(c, err)
		return
	}
	if links == nil {
		links = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"pdfLinks": links})
}

func (s *Server) handleOCRPDF(c *gin.Context) {
	name, data, err := formFile(c)
	if err != nil {
		s.error(c, err)
		return
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		s.error(c, lexdoc.Errorf(lexdoc.EINVALID, "only PDF files are allowed"))
		return
	}

	text, err := s.Extractor.ExtractText(c.Request.Context(), data)
	if err != nil {
		s.error(c, err)
		return
	}

	c.String(http.StatusOK, text)
}

type correctTextRequest struct {
	InputText string `json:"inputText"`
}

func (s *Server) handleCorrectText(c *gin.Context) {
	var req correctTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.error(c, lexdoc.Errorf(lexdoc.EINVALID, "invalid request body: %v", err))
		return
	}

	corr, err := s.Corrector.Correct(c.Request.Context(), req.InputText)
	if err != nil {
		s.error(c, err)
		return
	}

	c.JSON(http.StatusOK, corr)
}

type extractKeywordsRequest struct {
	Request string `json:"request"`
	TopN    int    `json:"topN"`
}

func (s *Server) handleExtractKeywords(c *gin.Context) {
	var req extractKeywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.error(c, lexdoc.Errorf(lexdoc.EINVALID, "invalid request body: %v", err))
		return
	}

	topN := req.TopN
	if topN <= 0 {
		topN = s.config.DefaultTopN
	}

	keywords, err := s.Keywords.ExtractKeywords(c.Request.Context(), req.Request, topN)
	if err != nil {
		s.error(c, err)
		return
	}
	if keywords == nil {
		keywords = []*lexdoc.ScoredKeyword{}
	}

	c.JSON(http.StatusOK, gin.H{"keywords": keywords})
}

type askForAdviceRequest struct {
	Question  string `json:"question"`
	FileID    string `json:"fileId"`
	InputText string `json:"inputText"`
}

func (s *Server) handleAskForAdvice(c *gin.Context) {
	in := lexdoc.AdviceInput{}

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		in.Question = c.PostForm("question")
		in.DocumentID = c.PostForm("fileId")
		in.InputText = c.PostForm("inputText")
		if header, err := c.FormFile("file"); err == nil {
			data, err := readFormFile(header)
			if err != nil {
				s.error(c, err)
				return
			}
			in.Filename = header.Filename
			in.PDF = data
		}
	} else {
		var req askForAdviceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			s.error(c, lexdoc.Errorf(lexdoc.EINVALID, "invalid request body: %v", err))
			return
		}
		in.Question = req.Question
		in.DocumentID = req.FileID
		in.InputText = req.InputText
	}

	res, err := s.Pipeline.AskForAdvice(c.Request.Context(), in)
	if err != nil {
		s.error(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (s *Server) handleLoadPDFData(c *gin.Context) {
	name, data, err := formFile(c)
	if err != nil {
		s.error(c, err)
		return
	}

	res, err := s.Pipeline.LoadPDFData(c.Request.Context(), lexdoc.IngestInput{
		URL:      c.Query("url"),
		Filename: name,
		PDF:      data,
	})
	if err != nil {
		s.error(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

// formFile reads the uploaded "file" part of a multipart request.
func formFile(c *gin.Context) (string, []byte, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return "", nil, lexdoc.Errorf(lexdoc.EINVALID, "file upload required")
	}
	data, err := readFormFile(header)
	if err != nil {
		return "", nil, err
	}
	return header.Filename, data, nil
}

func readFormFile(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, lexdoc.Errorf(lexdoc.EINVALID, "failed to read uploaded file: %v", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, lexdoc.Errorf(lexdoc.EINVALID, "failed to read uploaded file: %v", err)
	}
	return data, nil
}
