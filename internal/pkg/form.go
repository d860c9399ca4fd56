package pkg

import "strings"

// MaxCommentLen 评论长度上限
const MaxCommentLen = 2000

// FieldError 表单字段错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError 校验失败时携带全部字段错误，调用方用它重新渲染表单
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	var b strings.Builder
	for i, f := range e.Fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f.Field)
		b.WriteString(": ")
		b.WriteString(f.Message)
	}
	return b.String()
}

// ValidatePostText 发帖/编辑表单校验
func ValidatePostText(text string) *ValidationError {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Fields: []FieldError{{Field: "text", Message: "text required"}}}
	}
	return nil
}

// ValidateCommentText 评论表单校验
func ValidateCommentText(text string) *ValidationError {
	var fields []FieldError
	if strings.TrimSpace(text) == "" {
		fields = append(fields, FieldError{Field: "text", Message: "text required"})
	} else if len(text) > MaxCommentLen {
		fields = append(fields, FieldError{Field: "text", Message: "comment is too long"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateGroupForm 分组创建表单校验
func ValidateGroupForm(slug, title string) *ValidationError {
	var fields []FieldError
	if strings.TrimSpace(slug) == "" {
		fields = append(fields, FieldError{Field: "slug", Message: "slug required"})
	}
	if strings.TrimSpace(title) == "" {
		fields = append(fields, FieldError{Field: "title", Message: "title required"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
