// Package lexdoc provides a PDF document processing service. It ingests
// PDF documents (downloaded from URLs or collected by a link scrape),
// extracts their text through OCR, corrects grammar and spelling,
// extracts keywords, persists the results, and answers follow-up
// questions against a locally hosted language model.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, tesseract/, kobold/).
package lexdoc
