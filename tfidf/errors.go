package tfidf

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDocument         = errors.New("empty document")
	ErrTermAbsentEverywhere  = errors.New("vocabulary term absent from every document")
	ErrInsufficientDocuments = errors.New("insufficient documents")
)

// EmptyDocumentError is returned when a document has no tokens and its term
// frequencies would divide by zero.
type EmptyDocumentError struct {
	Index int
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("document %d has no words", e.Index)
}

func (e *EmptyDocumentError) Is(target error) bool {
	return target == ErrEmptyDocument
}

// VocabularyTermAbsentEverywhereError is returned when no document contains a
// reference term and its IDF would be ln(D/0).
type VocabularyTermAbsentEverywhereError struct {
	Term string
}

func (e *VocabularyTermAbsentEverywhereError) Error() string {
	return fmt.Sprintf("term %q does not occur in any document", e.Term)
}

func (e *VocabularyTermAbsentEverywhereError) Is(target error) bool {
	return target == ErrTermAbsentEverywhere
}

// InsufficientDocumentsError is returned when fewer than two documents are ranked.
type InsufficientDocumentsError struct {
	Count int
}

func (e *InsufficientDocumentsError) Error() string {
	return fmt.Sprintf("need at least 2 documents to rank, got %d", e.Count)
}

func (e *InsufficientDocumentsError) Is(target error) bool {
	return target == ErrInsufficientDocuments
}
