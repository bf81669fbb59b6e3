package handler

import (
	"errors"
	"html"
	"sort"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// categoryForm is the submitted category creation form.
type categoryForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
}

func (f categoryForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(1, 100).Error("name must be at most 100 characters"),
		),
	)
}

func (f *categoryForm) trim() {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
}

// tagForm is the submitted tag creation form.
type tagForm struct {
	Name string `form:"name"`
}

func (f tagForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(1, 50).Error("name must be at most 50 characters"),
		),
	)
}

func (f *tagForm) trim() {
	f.Name = strings.TrimSpace(f.Name)
}

// postForm is the submitted post creation form. Tags arrive as repeated ids,
// as one comma separated list of names, or both.
type postForm struct {
	Title      string   `form:"title"`
	Content    string   `form:"content"`
	AuthorID   string   `form:"author_id"`
	CategoryID string   `form:"category_id"`
	Published  string   `form:"published"`
	Tags       []string `form:"tags"`
}

func (f postForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required.Error("title is required")),
		validation.Field(&f.Content, validation.Required.Error("content is required")),
		validation.Field(&f.AuthorID,
			validation.Required.Error("author is required"),
			is.Digit.Error("author must be a number"),
		),
		validation.Field(&f.CategoryID,
			validation.Required.Error("category is required"),
			is.Digit.Error("category must be a number"),
		),
	)
}

func (f postForm) authorID() uint   { return parseUint(f.AuthorID) }
func (f postForm) categoryID() uint { return parseUint(f.CategoryID) }
func (f postForm) published() bool  { return isChecked(f.Published) }

// tagIDs returns the selected tag ids. Entries that are not ids are names,
// see tagNames.
func (f postForm) tagIDs() []uint {
	return parseUintList(f.Tags)
}

// tagNames splits every entry that is not an id on commas.
func (f postForm) tagNames() []string {
	var names []string
	for _, raw := range f.Tags {
		if strings.TrimSpace(raw) == "" || parseUint(raw) > 0 {
			continue
		}
		names = append(names, splitNames(raw)...)
	}
	return names
}

// tagText is the name list echoed back into the free text input.
func (f postForm) tagText() string {
	return strings.Join(f.tagNames(), ", ")
}

func (f *postForm) trim() {
	f.Title = strings.TrimSpace(f.Title)
	f.Content = strings.TrimSpace(f.Content)
	f.AuthorID = strings.TrimSpace(f.AuthorID)
	f.CategoryID = strings.TrimSpace(f.CategoryID)
}

func (f postForm) selectedTags() map[string]bool {
	selected := make(map[string]bool, len(f.Tags))
	for _, raw := range f.Tags {
		selected[strings.TrimSpace(raw)] = true
	}
	return selected
}

func parseUint(raw string) uint {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0
	}
	return uint(value)
}

// sanitizeText strips every tag from user supplied plain text. Entities are
// unescaped again because templates escape on output.
func sanitizeText(raw string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(strings.TrimSpace(raw))))
}

// validationMessages flattens an ozzo error into messages ordered by field.
func validationMessages(err error) []string {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, fieldErrs[field].Error())
	}
	return messages
}
