package wordpress

// Optional fields are pointers (or nil slices): absent means "do not send".
// An explicit zero value such as parent=0 or force=false is sent as given.

// ==================== Posts ====================

// CreatePostArgs contains parameters for creating a post
type CreatePostArgs struct {
	Title         string  `json:"title" jsonschema:"Post title"`
	Content       string  `json:"content" jsonschema:"Post body (HTML allowed)"`
	Status        *string `json:"status,omitempty" jsonschema:"publish (default), draft, pending, private or future"`
	Excerpt       *string `json:"excerpt,omitempty" jsonschema:"Short summary shown in listings"`
	Categories    []int   `json:"categories,omitempty" jsonschema:"Category IDs"`
	Tags          []int   `json:"tags,omitempty" jsonschema:"Tag IDs"`
	FeaturedMedia *int    `json:"featured_media,omitempty" jsonschema:"Media ID of the featured image"`
}

// GetPostArgs contains parameters for fetching a post
type GetPostArgs struct {
	PostID int     `json:"post_id" jsonschema:"Post ID"`
	Format *string `json:"format,omitempty" jsonschema:"html (default) returns rendered HTML; text strips markup"`
}

// ListPostsArgs contains parameters for listing posts
type ListPostsArgs struct {
	PerPage    *int    `json:"per_page,omitempty" jsonschema:"Results per page, 1-100 (default 10)"`
	Page       *int    `json:"page,omitempty" jsonschema:"Page number (default 1)"`
	Status     *string `json:"status,omitempty" jsonschema:"Filter by status: publish, draft, pending, private, future, trash or any"`
	Search     *string `json:"search,omitempty" jsonschema:"Full-text search"`
	Categories []int   `json:"categories,omitempty" jsonschema:"Only posts in these category IDs"`
}

// UpdatePostArgs contains parameters for updating a post
type UpdatePostArgs struct {
	PostID        int     `json:"post_id" jsonschema:"Post ID"`
	Title         *string `json:"title,omitempty" jsonschema:"New title"`
	Content       *string `json:"content,omitempty" jsonschema:"New body"`
	Status        *string `json:"status,omitempty" jsonschema:"New status"`
	Excerpt       *string `json:"excerpt,omitempty" jsonschema:"New excerpt"`
	Categories    []int   `json:"categories,omitempty" jsonschema:"Replacement category IDs"`
	Tags          []int   `json:"tags,omitempty" jsonschema:"Replacement tag IDs"`
	FeaturedMedia *int    `json:"featured_media,omitempty" jsonschema:"Media ID of the featured image (0 removes it)"`
}

// DeletePostArgs contains parameters for deleting a post
type DeletePostArgs struct {
	PostID int   `json:"post_id" jsonschema:"Post ID"`
	Force  *bool `json:"force,omitempty" jsonschema:"true deletes permanently; omitted moves the post to the trash"`
}

// SavePostResult is returned by post create and update
type SavePostResult struct {
	Envelope
	Post *ContentSummary `json:"post,omitempty"`
}

// GetPostResult is the result of fetching a post
type GetPostResult struct {
	Envelope
	Post *Post `json:"post,omitempty"`
}

// ListPostsResult is one page of posts
type ListPostsResult struct {
	Envelope
	Count int        `json:"count"`
	Posts []PostItem `json:"posts"`
}

// ==================== Pages ====================

// CreatePageArgs contains parameters for creating a page
type CreatePageArgs struct {
	Title    string  `json:"title" jsonschema:"Page title"`
	Content  string  `json:"content" jsonschema:"Page body (HTML allowed)"`
	Status   *string `json:"status,omitempty" jsonschema:"publish (default), draft, pending, private or future"`
	Excerpt  *string `json:"excerpt,omitempty" jsonschema:"Short summary"`
	Parent   *int    `json:"parent,omitempty" jsonschema:"Parent page ID (0 for top level)"`
	Template *string `json:"template,omitempty" jsonschema:"Theme template file, e.g. page-full-width.php"`
}

// GetPageArgs contains parameters for fetching a page
type GetPageArgs struct {
	PageID int     `json:"page_id" jsonschema:"Page ID"`
	Format *string `json:"format,omitempty" jsonschema:"html (default) returns rendered HTML; text strips markup"`
}

// ListPagesArgs contains parameters for listing pages
type ListPagesArgs struct {
	PerPage *int    `json:"per_page,omitempty" jsonschema:"Results per page, 1-100 (default 10)"`
	Page    *int    `json:"page,omitempty" jsonschema:"Page number (default 1)"`
	Status  *string `json:"status,omitempty" jsonschema:"Filter by status"`
	Search  *string `json:"search,omitempty" jsonschema:"Full-text search"`
	Parent  *int    `json:"parent,omitempty" jsonschema:"Only children of this page ID (0 for top level)"`
}

// UpdatePageArgs contains parameters for updating a page
type UpdatePageArgs struct {
	PageID   int     `json:"page_id" jsonschema:"Page ID"`
	Title    *string `json:"title,omitempty" jsonschema:"New title"`
	Content  *string `json:"content,omitempty" jsonschema:"New body"`
	Status   *string `json:"status,omitempty" jsonschema:"New status"`
	Excerpt  *string `json:"excerpt,omitempty" jsonschema:"New excerpt"`
	Parent   *int    `json:"parent,omitempty" jsonschema:"New parent page ID (0 moves it to top level)"`
	Template *string `json:"template,omitempty" jsonschema:"New template file"`
}

// DeletePageArgs contains parameters for deleting a page
type DeletePageArgs struct {
	PageID int   `json:"page_id" jsonschema:"Page ID"`
	Force  *bool `json:"force,omitempty" jsonschema:"true deletes permanently; omitted moves the page to the trash"`
}

// SavePageResult is returned by page create and update
type SavePageResult struct {
	Envelope
	Page *ContentSummary `json:"page,omitempty"`
}

// GetPageResult is the result of fetching a page
type GetPageResult struct {
	Envelope
	Page *Page `json:"page,omitempty"`
}

// ListPagesResult is one page of pages
type ListPagesResult struct {
	Envelope
	Count int        `json:"count"`
	Pages []PageItem `json:"pages"`
}

// ==================== Users ====================

// GetUserArgs contains parameters for fetching a user
type GetUserArgs struct {
	UserID int `json:"user_id" jsonschema:"User ID"`
}

// ListUsersArgs contains parameters for listing users
type ListUsersArgs struct {
	PerPage *int     `json:"per_page,omitempty" jsonschema:"Results per page, 1-100 (default 10)"`
	Page    *int     `json:"page,omitempty" jsonschema:"Page number (default 1)"`
	Search  *string  `json:"search,omitempty" jsonschema:"Match name, username, email or URL"`
	Roles   []string `json:"roles,omitempty" jsonschema:"Only users with one of these roles, e.g. administrator, editor"`
}

// CreateUserArgs contains parameters for creating a user
type CreateUserArgs struct {
	Username string   `json:"username" jsonschema:"Login name"`
	Email    string   `json:"email" jsonschema:"Email address"`
	Password string   `json:"password" jsonschema:"Initial password"`
	Name     *string  `json:"name,omitempty" jsonschema:"Display name"`
	Roles    []string `json:"roles,omitempty" jsonschema:"Roles to assign (default: the site's default role)"`
}

// UpdateUserArgs contains parameters for updating a user
type UpdateUserArgs struct {
	UserID   int      `json:"user_id" jsonschema:"User ID"`
	Email    *string  `json:"email,omitempty" jsonschema:"New email address"`
	Name     *string  `json:"name,omitempty" jsonschema:"New display name"`
	Password *string  `json:"password,omitempty" jsonschema:"New password"`
	Roles    []string `json:"roles,omitempty" jsonschema:"Replacement roles"`
}

// GetUserResult is the result of fetching a user
type GetUserResult struct {
	Envelope
	User *User `json:"user,omitempty"`
}

// ListUsersResult is one page of users
type ListUsersResult struct {
	Envelope
	Count int        `json:"count"`
	Users []UserItem `json:"users"`
}

// SaveUserResult is returned by user create and update
type SaveUserResult struct {
	Envelope
	User *UserSummary `json:"user,omitempty"`
}

// ==================== Media ====================

// UploadMediaArgs contains parameters for uploading a file. Exactly one of
// source_url and local_path is required.
type UploadMediaArgs struct {
	SourceURL string  `json:"source_url,omitempty" jsonschema:"Public URL to download the file from"`
	LocalPath string  `json:"local_path,omitempty" jsonschema:"Path of a file on the server's filesystem"`
	Filename  string  `json:"filename,omitempty" jsonschema:"Override the uploaded file name"`
	Title     *string `json:"title,omitempty" jsonschema:"Attachment title"`
	AltText   *string `json:"alt_text,omitempty" jsonschema:"Alternative text for images"`
	Caption   *string `json:"caption,omitempty" jsonschema:"Attachment caption"`
}

// GetMediaArgs contains parameters for fetching an attachment
type GetMediaArgs struct {
	MediaID int `json:"media_id" jsonschema:"Media ID"`
}

// ListMediaArgs contains parameters for listing the media library
type ListMediaArgs struct {
	PerPage   *int    `json:"per_page,omitempty" jsonschema:"Results per page, 1-100 (default 10)"`
	Page      *int    `json:"page,omitempty" jsonschema:"Page number (default 1)"`
	MediaType *string `json:"media_type,omitempty" jsonschema:"image, video, audio, text or application"`
	Search    *string `json:"search,omitempty" jsonschema:"Full-text search"`
}

// UpdateMediaArgs contains parameters for editing attachment metadata
type UpdateMediaArgs struct {
	MediaID     int     `json:"media_id" jsonschema:"Media ID"`
	Title       *string `json:"title,omitempty" jsonschema:"New title"`
	AltText     *string `json:"alt_text,omitempty" jsonschema:"New alternative text"`
	Caption     *string `json:"caption,omitempty" jsonschema:"New caption"`
	Description *string `json:"description,omitempty" jsonschema:"New description"`
}

// MediaResult is returned by upload, get and update
type MediaResult struct {
	Envelope
	Media *Media `json:"media,omitempty"`
}

// ListMediaResult is one page of the media library
type ListMediaResult struct {
	Envelope
	Count int     `json:"count"`
	Media []Media `json:"media"`
}

// ==================== Comments ====================

// GetCommentArgs contains parameters for fetching a comment
type GetCommentArgs struct {
	CommentID int `json:"comment_id" jsonschema:"Comment ID"`
}

// ListCommentsArgs contains parameters for listing comments
type ListCommentsArgs struct {
	PerPage *int    `json:"per_page,omitempty" jsonschema:"Results per page, 1-100 (default 10)"`
	Page    *int    `json:"page,omitempty" jsonschema:"Page number (default 1)"`
	Post    *int    `json:"post,omitempty" jsonschema:"Only comments on this post ID"`
	Status  *string `json:"status,omitempty" jsonschema:"approve, hold, spam or trash"`
	Search  *string `json:"search,omitempty" jsonschema:"Full-text search"`
}

// CreateCommentArgs contains parameters for creating a comment
type CreateCommentArgs struct {
	Post        int     `json:"post" jsonschema:"Post ID to comment on"`
	Content     string  `json:"content" jsonschema:"Comment text"`
	AuthorName  string  `json:"author_name" jsonschema:"Display name of the author"`
	AuthorEmail *string `json:"author_email,omitempty" jsonschema:"Author email"`
	Parent      *int    `json:"parent,omitempty" jsonschema:"Parent comment ID for replies"`
}

// UpdateCommentArgs contains parameters for updating a comment
type UpdateCommentArgs struct {
	CommentID int     `json:"comment_id" jsonschema:"Comment ID"`
	Content   *string `json:"content,omitempty" jsonschema:"New text"`
	Status    *string `json:"status,omitempty" jsonschema:"approve, hold, spam or trash"`
}

// DeleteCommentArgs contains parameters for deleting a comment
type DeleteCommentArgs struct {
	CommentID int   `json:"comment_id" jsonschema:"Comment ID"`
	Force     *bool `json:"force,omitempty" jsonschema:"true deletes permanently; omitted moves the comment to the trash"`
}

// GetCommentResult is the result of fetching a comment
type GetCommentResult struct {
	Envelope
	Comment *Comment `json:"comment,omitempty"`
}

// ListCommentsResult is one page of comments
type ListCommentsResult struct {
	Envelope
	Count    int           `json:"count"`
	Comments []CommentItem `json:"comments"`
}

// SaveCommentResult is returned by comment create and update
type SaveCommentResult struct {
	Envelope
	Comment *CommentSummary `json:"comment,omitempty"`
}

// ==================== Categories and tags ====================

// ListCategoriesArgs contains parameters for listing categories
type ListCategoriesArgs struct {
	PerPage   *int    `json:"per_page,omitempty" jsonschema:"Results per page, 1-100 (default 100)"`
	Page      *int    `json:"page,omitempty" jsonschema:"Page number (default 1)"`
	Search    *string `json:"search,omitempty" jsonschema:"Match category names"`
	Parent    *int    `json:"parent,omitempty" jsonschema:"Only children of this category ID (0 for top level)"`
	HideEmpty *bool   `json:"hide_empty,omitempty" jsonschema:"Skip categories without posts"`
}

// GetCategoryArgs contains parameters for fetching a category
type GetCategoryArgs struct {
	CategoryID int `json:"category_id" jsonschema:"Category ID"`
}

// CreateCategoryArgs contains parameters for creating a category
type CreateCategoryArgs struct {
	Name        string  `json:"name" jsonschema:"Category name"`
	Description *string `json:"description,omitempty" jsonschema:"Category description"`
	Slug        *string `json:"slug,omitempty" jsonschema:"URL slug (derived from the name if omitted)"`
	Parent      *int    `json:"parent,omitempty" jsonschema:"Parent category ID"`
}

// UpdateCategoryArgs contains parameters for updating a category
type UpdateCategoryArgs struct {
	CategoryID  int     `json:"category_id" jsonschema:"Category ID"`
	Name        *string `json:"name,omitempty" jsonschema:"New name"`
	Description *string `json:"description,omitempty" jsonschema:"New description"`
	Slug        *string `json:"slug,omitempty" jsonschema:"New slug"`
	Parent      *int    `json:"parent,omitempty" jsonschema:"New parent category ID (0 for top level)"`
}

// ListCategoriesResult is one page of categories
type ListCategoriesResult struct {
	Envelope
	Count      int        `json:"count"`
	Categories []Category `json:"categories"`
}

// GetCategoryResult is the result of fetching a category
type GetCategoryResult struct {
	Envelope
	Category *Category `json:"category,omitempty"`
}

// SaveCategoryResult is returned by category create and update
type SaveCategoryResult struct {
	Envelope
	Category *TermSummary `json:"category,omitempty"`
}

// ListTagsArgs contains parameters for listing tags
type ListTagsArgs struct {
	PerPage   *int    `json:"per_page,omitempty" jsonschema:"Results per page, 1-100 (default 100)"`
	Page      *int    `json:"page,omitempty" jsonschema:"Page number (default 1)"`
	Search    *string `json:"search,omitempty" jsonschema:"Match tag names"`
	HideEmpty *bool   `json:"hide_empty,omitempty" jsonschema:"Skip tags without posts"`
}

// GetTagArgs contains parameters for fetching a tag
type GetTagArgs struct {
	TagID int `json:"tag_id" jsonschema:"Tag ID"`
}

// CreateTagArgs contains parameters for creating a tag
type CreateTagArgs struct {
	Name        string  `json:"name" jsonschema:"Tag name"`
	Description *string `json:"description,omitempty" jsonschema:"Tag description"`
	Slug        *string `json:"slug,omitempty" jsonschema:"URL slug (derived from the name if omitted)"`
}

// UpdateTagArgs contains parameters for updating a tag
type UpdateTagArgs struct {
	TagID       int     `json:"tag_id" jsonschema:"Tag ID"`
	Name        *string `json:"name,omitempty" jsonschema:"New name"`
	Description *string `json:"description,omitempty" jsonschema:"New description"`
	Slug        *string `json:"slug,omitempty" jsonschema:"New slug"`
}

// ListTagsResult is one page of tags
type ListTagsResult struct {
	Envelope
	Count int   `json:"count"`
	Tags  []Tag `json:"tags"`
}

// GetTagResult is the result of fetching a tag
type GetTagResult struct {
	Envelope
	Tag *Tag `json:"tag,omitempty"`
}

// SaveTagResult is returned by tag create and update
type SaveTagResult struct {
	Envelope
	Tag *TermSummary `json:"tag,omitempty"`
}

// ==================== Shared ====================

// DeleteResult is returned by every delete tool
type DeleteResult struct {
	Envelope
	ID      int  `json:"id,omitempty"`
	Deleted bool `json:"deleted"`
	Trashed bool `json:"trashed,omitempty"`
}

// GetSiteInfoArgs takes no parameters
type GetSiteInfoArgs struct{}

// SiteInfoResult is the result of the site info lookup
type SiteInfoResult struct {
	Envelope
	Site *SiteInfo `json:"site,omitempty"`
}

// ResourceID implementations let the tool layer log the targeted object.

func (a GetPostArgs) ResourceID() int { return a.PostID }
func (a UpdatePostArgs) ResourceID() int { return a.PostID }
func (a DeletePostArgs) ResourceID() int { return a.PostID }
func (a GetPageArgs) ResourceID() int { return a.PageID }
func (a UpdatePageArgs) ResourceID() int { return a.PageID }
func (a DeletePageArgs) ResourceID() int { return a.PageID }
func (a GetUserArgs) ResourceID() int { return a.UserID }
func (a UpdateUserArgs) ResourceID() int { return a.UserID }
func (a GetMediaArgs) ResourceID() int { return a.MediaID }
func (a UpdateMediaArgs) ResourceID() int { return a.MediaID }
func (a GetCommentArgs) ResourceID() int { return a.CommentID }
func (a UpdateCommentArgs) ResourceID() int { return a.CommentID }
func (a DeleteCommentArgs) ResourceID() int { return a.CommentID }
func (a GetCategoryArgs) ResourceID() int { return a.CategoryID }
func (a UpdateCategoryArgs) ResourceID() int { return a.CategoryID }
func (a GetTagArgs) ResourceID() int { return a.TagID }
func (a UpdateTagArgs) ResourceID() int { return a.TagID }

// ItemCount implementations expose list sizes to the tool layer.

func (r ListPostsResult) ItemCount() int { return r.Count }
func (r ListPagesResult) ItemCount() int { return r.Count }
func (r ListUsersResult) ItemCount() int { return r.Count }
func (r ListMediaResult) ItemCount() int { return r.Count }
func (r ListCommentsResult) ItemCount() int { return r.Count }
func (r ListCategoriesResult) ItemCount() int { return r.Count }
func (r ListTagsResult) ItemCount() int { return r.Count }
