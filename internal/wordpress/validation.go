package wordpress

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	apierrors "github.com/olgasafonova/wordpress-mcp-server/internal/errors"
)

var (
	postStatuses    = []any{"publish", "draft", "pending", "private", "future"}
	postListFilters = []any{"publish", "draft", "pending", "private", "future", "trash", "any"}
	commentStatuses = []any{"approve", "approved", "hold", "spam", "trash"}
	mediaTypes      = []any{"image", "video", "audio", "text", "application"}
	formats         = []any{"html", "text"}
)

// Shared rule sets
var (
	idRules      = []validation.Rule{validation.Required, validation.Min(1)}
	perPageRules = []validation.Rule{atLeastOne, validation.Max(MaxPerPage)}
	pageRules    = []validation.Rule{atLeastOne}
	idListRules  = []validation.Rule{validation.Each(atLeastOne)}
	optionalID   = []validation.Rule{validation.Min(0)}
	notBlank     = []validation.Rule{validation.Required, validation.By(notWhitespace)}
	blankIfSet   = []validation.Rule{validation.NilOrNotEmpty, validation.By(notWhitespace)}
)

// atLeastOne rejects values below 1. ozzo's Min skips zero as empty, so an
// explicit 0 would otherwise pass.
var atLeastOne = validation.By(func(value any) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	if n, ok := v.(int); ok && n < 1 {
		return errors.New("must be no less than 1")
	}
	return nil
})

func notWhitespace(value any) error {
	v, isNil := validation.Indirect(value)
	s, ok := v.(string)
	if isNil || !ok || s == "" {
		return nil
	}
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

// toValidationError converts ozzo-validation's field map into the
// ValidationError the envelope reports.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return &apierrors.ValidationError{Message: err.Error()}
	}
	fields := make([]string, 0, len(fieldErrs))
	for f := range fieldErrs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	if len(fields) == 1 {
		return apierrors.NewValidationError(fields[0], "", fieldErrs[fields[0]].Error())
	}
	return &apierrors.ValidationError{Message: fieldErrs.Error()}
}

// Validate checks CreatePostArgs
func (a CreatePostArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.Title, notBlank...),
		validation.Field(&a.Content, validation.Required),
		validation.Field(&a.Status, validation.NilOrNotEmpty, validation.In(postStatuses...)),
		validation.Field(&a.FeaturedMedia, optionalID...),
		validation.Field(&a.Categories, idListRules...),
		validation.Field(&a.Tags, idListRules...),
	))
}

// Validate checks GetPostArgs
func (a GetPostArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.PostID, idRules...),
		validation.Field(&a.Format, validation.In(formats...)),
	))
}

// Validate checks ListPostsArgs
func (a ListPostsArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.PerPage, perPageRules...),
		validation.Field(&a.Page, pageRules...),
		validation.Field(&a.Status, validation.In(postListFilters...)),
		validation.Field(&a.Categories, idListRules...),
	))
}

// Validate checks UpdatePostArgs
func (a UpdatePostArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.PostID, idRules...),
		validation.Field(&a.Title, blankIfSet...),
		validation.Field(&a.Status, validation.NilOrNotEmpty, validation.In(postStatuses...)),
		validation.Field(&a.FeaturedMedia, optionalID...),
		validation.Field(&a.Categories, idListRules...),
		validation.Field(&a.Tags, idListRules...),
	))
}

// Validate checks DeletePostArgs
func (a DeletePostArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.PostID, idRules...),
	))
}

// Validate checks CreatePageArgs
func (a CreatePageArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.Title, notBlank...),
		validation.Field(&a.Content, validation.Required),
		validation.Field(&a.Status, validation.NilOrNotEmpty, validation.In(postStatuses...)),
		validation.Field(&a.Parent, optionalID...),
	))
}

// Validate checks GetPageArgs
func (a GetPageArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.PageID, idRules...),
		validation.Field(&a.Format, validation.In(formats...)),
	))
}

// Validate checks ListPagesArgs
func (a ListPagesArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.PerPage, perPageRules...),
		validation.Field(&a.Page, pageRules...),
		validation.Field(&a.Status, validation.In(postListFilters...)),
		validation.Field(&a.Parent, optionalID...),
	))
}

// Validate checks UpdatePageArgs
func (a UpdatePageArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.PageID, idRules...),
		validation.Field(&a.Title, blankIfSet...),
		validation.Field(&a.Status, validation.NilOrNotEmpty, validation.In(postStatuses...)),
		validation.Field(&a.Parent, optionalID...),
	))
}

// Validate checks DeletePageArgs
func (a DeletePageArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.PageID, idRules...),
	))
}

// Validate checks GetUserArgs
func (a GetUserArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.UserID, idRules...),
	))
}

// Validate checks ListUsersArgs
func (a ListUsersArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.PerPage, perPageRules...),
		validation.Field(&a.Page, pageRules...),
		validation.Field(&a.Roles, validation.Each(validation.Required)),
	))
}

// Validate checks CreateUserArgs
func (a CreateUserArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.Username, notBlank...),
		validation.Field(&a.Email, validation.Required, is.EmailFormat),
		validation.Field(&a.Password, validation.Required),
		validation.Field(&a.Roles, validation.Each(validation.Required)),
	))
}

// Validate checks UpdateUserArgs
func (a UpdateUserArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.UserID, idRules...),
		validation.Field(&a.Email, validation.NilOrNotEmpty, is.EmailFormat),
		validation.Field(&a.Password, validation.NilOrNotEmpty),
		validation.Field(&a.Roles, validation.Each(validation.Required)),
	))
}

// Validate checks UploadMediaArgs. The source exclusivity rule lives in the
// transport so it holds for every caller.
func (a UploadMediaArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.SourceURL, is.URL),
	))
}

// Validate checks GetMediaArgs
func (a GetMediaArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.MediaID, idRules...),
	))
}

// Validate checks ListMediaArgs
func (a ListMediaArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.PerPage, perPageRules...),
		validation.Field(&a.Page, pageRules...),
		validation.Field(&a.MediaType, validation.In(mediaTypes...)),
	))
}

// Validate checks UpdateMediaArgs
func (a UpdateMediaArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.MediaID, idRules...),
	))
}

// Validate checks GetCommentArgs
func (a GetCommentArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.CommentID, idRules...),
	))
}

// Validate checks ListCommentsArgs
func (a ListCommentsArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.PerPage, perPageRules...),
		validation.Field(&a.Page, pageRules...),
		validation.Field(&a.Post, atLeastOne),
		validation.Field(&a.Status, validation.In(commentStatuses...)),
	))
}

// Validate checks CreateCommentArgs
func (a CreateCommentArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.Post, idRules...),
		validation.Field(&a.Content, notBlank...),
		validation.Field(&a.AuthorName, notBlank...),
		validation.Field(&a.AuthorEmail, validation.NilOrNotEmpty, is.EmailFormat),
		validation.Field(&a.Parent, optionalID...),
	))
}

// Validate checks UpdateCommentArgs
func (a UpdateCommentArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.CommentID, idRules...),
		validation.Field(&a.Status, validation.NilOrNotEmpty, validation.In(commentStatuses...)),
	))
}

// Validate checks DeleteCommentArgs
func (a DeleteCommentArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.CommentID, idRules...),
	))
}

// Validate checks ListCategoriesArgs
func (a ListCategoriesArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.PerPage, perPageRules...),
		validation.Field(&a.Page, pageRules...),
		validation.Field(&a.Parent, optionalID...),
	))
}

// Validate checks GetCategoryArgs
func (a GetCategoryArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.CategoryID, idRules...),
	))
}

// Validate checks CreateCategoryArgs
func (a CreateCategoryArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.Name, notBlank...),
		validation.Field(&a.Parent, optionalID...),
	))
}

// Validate checks UpdateCategoryArgs
func (a UpdateCategoryArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.CategoryID, idRules...),
		validation.Field(&a.Name, blankIfSet...),
		validation.Field(&a.Parent, optionalID...),
	))
}

// Validate checks ListTagsArgs
func (a ListTagsArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.PerPage, perPageRules...),
		validation.Field(&a.Page, pageRules...),
	))
}

// Validate checks GetTagArgs
func (a GetTagArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.TagID, idRules...),
	))
}

// Validate checks CreateTagArgs
func (a CreateTagArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.Name, notBlank...),
	))
}

// Validate checks UpdateTagArgs
func (a UpdateTagArgs) Validate() error {
	return toValidationError(validation.ValidateStruct(&a,
		validation.Field(&a.TagID, idRules...),
		validation.Field(&a.Name, blankIfSet...),
	))
}
