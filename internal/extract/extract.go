package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"resume-ats/internal/shared/metrics"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"

	mimeZip   = "application/zip"
	mimeOctet = "application/octet-stream"
)

var (
	// ErrUnsupportedType is returned for payloads that are not PDF, DOCX or plain text.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrEmptyDocument is returned when a document yields no text.
	ErrEmptyDocument = errors.New("no text found in document")
)

// Document is the text pulled from an uploaded file.
type Document struct {
	Text      string `json:"text"`
	FileName  string `json:"fileName"`
	MimeType  string `json:"mimeType"`
	WordCount int    `json:"wordCount"`
}

// Extract detects the payload type and returns its text with metadata.
func Extract(ctx context.Context, data []byte, mimeType, fileName string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	normalized := DetectMimeType(mimeType, fileName, data)
	text, err := extractByType(normalized, data)
	if err == nil && strings.TrimSpace(text) == "" {
		err = ErrEmptyDocument
	}
	if err != nil {
		metrics.IncExtraction(normalized, outcomeFor(err))
		return Document{}, fmt.Errorf("extract %q (%s): %w", fileName, normalized, err)
	}
	metrics.IncExtraction(normalized, "ok")
	return Document{
		Text:      text,
		FileName:  fileName,
		MimeType:  normalized,
		WordCount: len(strings.Fields(text)),
	}, nil
}

// ExtractTextFromBytes extracts text from an in-memory payload.
func ExtractTextFromBytes(ctx context.Context, data []byte, mimeType string, fileName string) (string, error) {
	doc, err := Extract(ctx, data, mimeType, fileName)
	if err != nil {
		return "", err
	}
	return doc.Text, nil
}

func extractByType(mimeType string, data []byte) (string, error) {
	switch mimeType {
	case MimePDF:
		return extractPDF(data)
	case MimeDOCX:
		return extractDOCX(data)
	case MimeText:
		return extractPlain(data), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mimeType)
	}
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedType):
		return "unsupported"
	case errors.Is(err, ErrEmptyDocument):
		return "empty"
	default:
		return "failed"
	}
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyDocument
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		// Packages without a relationships part are still readable directly.
		raw, zerr := readDocumentXML(data)
		if zerr != nil {
			return "", err
		}
		return stripDocxXML(raw), nil
	}
	defer doc.Close()
	return stripDocxXML(doc.Editable().GetContent()), nil
}

func readDocumentXML(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()
		raw, err := io.ReadAll(rc)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	return "", errors.New("document.xml file not found")
}

func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			if inText {
				buf.WriteString(string(t))
			}
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				buf.WriteString("\t")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p", "br":
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func extractPlain(data []byte) string {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), "")
}

// DetectMimeType resolves the payload type from the declared MIME type, the
// file extension and finally the content itself.
func DetectMimeType(mimeType string, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	switch clean {
	case MimePDF, MimeDOCX:
		return clean
	case MimeText, "text/markdown":
		return MimeText
	case mimeZip:
		if mapped := mapOOXMLFromZip(data); mapped != "" {
			return mapped
		}
		if fromExt := mimeFromExtension(fileName); fromExt == MimeDOCX {
			return fromExt
		}
		return clean
	case "", mimeOctet:
		if fromExt := mimeFromExtension(fileName); fromExt != "" {
			return fromExt
		}
		return sniff(data)
	default:
		return clean
	}
}

func mimeFromExtension(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	case ".txt", ".md", ".text":
		return MimeText
	default:
		return ""
	}
}

func sniff(data []byte) string {
	if len(data) == 0 {
		return mimeOctet
	}
	detected := strings.Split(http.DetectContentType(data), ";")[0]
	if detected == mimeZip {
		if mapped := mapOOXMLFromZip(data); mapped != "" {
			return mapped
		}
	}
	return detected
}

func mapOOXMLFromZip(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		switch name {
		case "word/document.xml":
			return MimeDOCX
		case "xl/workbook.xml":
			return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		case "ppt/presentation.xml":
			return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
		}
	}
	return ""
}
