package pkg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePostText(t *testing.T) {
	assert.Nil(t, ValidatePostText("hello"))

	verr := ValidatePostText("")
	assert.NotNil(t, verr)
	assert.Equal(t, "text", verr.Fields[0].Field)

	// 纯空白也算空
	verr = ValidatePostText("   \n\t")
	assert.NotNil(t, verr)
}

func TestValidateCommentText(t *testing.T) {
	assert.Nil(t, ValidateCommentText("nice post"))

	verr := ValidateCommentText("")
	assert.NotNil(t, verr)

	verr = ValidateCommentText(strings.Repeat("x", MaxCommentLen+1))
	assert.NotNil(t, verr)
	assert.Equal(t, "comment is too long", verr.Fields[0].Message)
}

func TestValidateGroupForm(t *testing.T) {
	assert.Nil(t, ValidateGroupForm("go-news", "Go News"))

	verr := ValidateGroupForm("", "")
	assert.NotNil(t, verr)
	assert.Len(t, verr.Fields, 2)
}

func TestValidationError_Error(t *testing.T) {
	verr := &ValidationError{Fields: []FieldError{{Field: "text", Message: "text required"}}}
	assert.Contains(t, verr.Error(), "text required")
}
