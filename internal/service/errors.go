package service

import (
	"errors"
	"sort"
	"strings"
)

// 业务层哨兵错误，由 handler 映射为 HTTP 状态码
var (
	ErrNotFound          = errors.New("record not found")
	ErrNameExists        = errors.New("category name already exists")
	ErrCategoryInUse     = errors.New("category is referenced by posts")
	ErrDraftNotPublished = errors.New("this post is currently a draft")
	ErrVersionConflict   = errors.New("post was modified by another session")
)

// ValidationError 字段级校验错误
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+e.Fields[key])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) add(field, message string) {
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
