package tools

// AllTools contains all tool specifications for the WordPress MCP server.
// Tools are organized by resource for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// POSTS
	// ==========================================================================
	{
		Name:     "wp_create_post",
		Method:   "CreatePost",
		Title:    "Create Post",
		Category: "create",
		Resource: "post",
		Description: `Create a new blog post.

USE WHEN: User says "write a post about X", "publish this article", "draft a blog post".

NOT FOR: Static pages like About or Contact (use wp_create_page). Editing an existing post (use wp_update_post).

PARAMETERS:
- title: Post title (required)
- content: Post body, HTML allowed (required)
- status: publish (default), draft, pending, private or future
- excerpt, categories, tags, featured_media: optional

RETURNS: id, title, link and status of the new post.`,
		OpenWorld: true,
	},
	{
		Name:     "wp_get_post",
		Method:   "GetPost",
		Title:    "Get Post",
		Category: "read",
		Resource: "post",
		Description: `Fetch one post by ID with its full content.

USE WHEN: User asks "show me post 42", "what does the post say", "read the latest article" (after listing).

NOT FOR: Browsing or searching posts (use wp_list_posts).

PARAMETERS:
- post_id: Post ID (required)
- format: html (default) or text to strip markup

RETURNS: Title, content, excerpt, status, date, link, author, categories, tags, featured_media.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wp_list_posts",
		Method:   "ListPosts",
		Title:    "List Posts",
		Category: "list",
		Resource: "post",
		Description: `List or search posts, one page at a time.

USE WHEN: User asks "what posts do we have", "find posts about X", "show drafts".

NOT FOR: Reading a single post in full (use wp_get_post).

PARAMETERS:
- per_page: 1-100 (default 10)
- page: Page number (default 1)
- status: publish, draft, pending, private, future, trash or any
- search: Full-text search
- categories: Category IDs

RETURNS: count (items on this page) and posts with id, title, excerpt, status, date, link.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wp_update_post",
		Method:   "UpdatePost",
		Title:    "Update Post",
		Category: "update",
		Resource: "post",
		Description: `Change fields of an existing post. Only the fields you pass are sent.

USE WHEN: User says "fix the title of post 12", "publish my draft", "add tag 4 to this post".

NOT FOR: Creating a post (use wp_create_post).

PARAMETERS:
- post_id: Post ID (required)
- title, content, status, excerpt, categories, tags, featured_media: optional

RETURNS: id, title, link and status after the update.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "wp_delete_post",
		Method:   "DeletePost",
		Title:    "Delete Post",
		Category: "delete",
		Resource: "post",
		Description: `Move a post to the trash, or delete it permanently.

USE WHEN: User says "remove post 12", "trash that draft", "permanently delete".

NOT FOR: Unpublishing while keeping the post (use wp_update_post with status draft).

PARAMETERS:
- post_id: Post ID (required)
- force: true deletes permanently; omit to trash

RETURNS: deleted flag, plus trashed when the post went to the trash.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// PAGES
	// ==========================================================================
	{
		Name:     "wp_create_page",
		Method:   "CreatePage",
		Title:    "Create Page",
		Category: "create",
		Resource: "page",
		Description: `Create a static page.

USE WHEN: User says "add an About page", "create a landing page", "make a child page under Services".

NOT FOR: Blog posts (use wp_create_post).

PARAMETERS:
- title: Page title (required)
- content: Page body, HTML allowed (required)
- status: publish (default), draft, pending, private or future
- excerpt, parent, template: optional

RETURNS: id, title, link and status of the new page.`,
		OpenWorld: true,
	},
	{
		Name:     "wp_get_page",
		Method:   "GetPage",
		Title:    "Get Page",
		Category: "read",
		Resource: "page",
		Description: `Fetch one page by ID with its full content.

USE WHEN: User asks "show the Contact page", "what's on page 7".

NOT FOR: Posts (use wp_get_post). Browsing pages (use wp_list_pages).

PARAMETERS:
- page_id: Page ID (required)
- format: html (default) or text to strip markup

RETURNS: Title, content, excerpt, status, date, link, parent, template.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wp_list_pages",
		Method:   "ListPages",
		Title:    "List Pages",
		Category: "list",
		Resource: "page",
		Description: `List or search pages, one page at a time.

USE WHEN: User asks "what pages exist", "show the child pages of 3", "find the pricing page".

NOT FOR: Reading a page in full (use wp_get_page).

PARAMETERS:
- per_page: 1-100 (default 10)
- page: Page number (default 1)
- status, search: optional filters
- parent: Parent page ID (0 for top level)

RETURNS: count and pages with id, title, excerpt, status, date, link, parent.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wp_update_page",
		Method:   "UpdatePage",
		Title:    "Update Page",
		Category: "update",
		Resource: "page",
		Description: `Change fields of an existing page. Only the fields you pass are sent.

USE WHEN: User says "update the About page text", "move page 9 under page 3", "switch the template".

NOT FOR: Creating a page (use wp_create_page).

PARAMETERS:
- page_id: Page ID (required)
- title, content, status, excerpt, parent, template: optional

RETURNS: id, title, link and status after the update.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "wp_delete_page",
		Method:   "DeletePage",
		Title:    "Delete Page",
		Category: "delete",
		Resource: "page",
		Description: `Move a page to the trash, or delete it permanently.

USE WHEN: User says "remove the old landing page", "delete page 9".

NOT FOR: Hiding a page while keeping it (use wp_update_page with status draft or private).

PARAMETERS:
- page_id: Page ID (required)
- force: true deletes permanently; omit to trash

RETURNS: deleted flag, plus trashed when the page went to the trash.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// USERS
	// ==========================================================================
	{
		Name:     "wp_get_user",
		Method:   "GetUser",
		Title:    "Get User",
		Category: "read",
		Resource: "user",
		Description: `Fetch one user account by ID.

USE WHEN: User asks "who is author 3", "what role does user 5 have".

NOT FOR: Finding users by name (use wp_list_users with search). The account the server runs as (use wp_get_site_info).

PARAMETERS:
- user_id: User ID (required)

RETURNS: id, name, username, email, url, description, link, roles.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wp_list_users",
		Method:   "ListUsers",
		Title:    "List Users",
		Category: "list",
		Resource: "user",
		Description: `List or search user accounts.

USE WHEN: User asks "who are our editors", "find the user named Ada", "list all administrators".

NOT FOR: A single known user (use wp_get_user).

PARAMETERS:
- per_page: 1-100 (default 10)
- page: Page number (default 1)
- search: Match name, username, email or URL
- roles: Only these roles

RETURNS: count and users with id, name, username, email, link, roles.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wp_create_user",
		Method:   "CreateUser",
		Title:    "Create User",
		Category: "create",
		Resource: "user",
		Description: `Create a user account.

USE WHEN: User says "add a new author", "create an editor account for grace@example.com".

NOT FOR: Changing an existing account (use wp_update_user).

PARAMETERS:
- username, email, password: required
- name: Display name
- roles: Roles to assign

RETURNS: id, username, email and name of the new account.`,
		OpenWorld: true,
	},
	{
		Name:     "wp_update_user",
		Method:   "UpdateUser",
		Title:    "Update User",
		Category: "update",
		Resource: "user",
		Description: `Change an existing user account. Only the fields you pass are sent.

USE WHEN: User says "promote user 5 to editor", "change Ada's email", "reset the password for user 8".

NOT FOR: Creating accounts (use wp_create_user).

PARAMETERS:
- user_id: User ID (required)
- email, name, password, roles: optional

RETURNS: id, username, email and name after the update.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// MEDIA
	// ==========================================================================
	{
		Name:     "wp_upload_media",
		Method:   "UploadMedia",
		Title:    "Upload Media",
		Category: "create",
		Resource: "media",
		Description: `Upload an image or other file to the media library.

USE WHEN: User says "upload this image", "add https://example.com/logo.png to the media library", "attach the file at /tmp/report.pdf".

NOT FOR: Changing an existing attachment's caption or alt text (use wp_update_media).

PARAMETERS:
- source_url OR local_path: exactly one is required
- filename: Override the file name
- title, alt_text, caption: optional metadata

RETURNS: id, title, source_url, link, media_type, mime_type, alt_text of the attachment.`,
		OpenWorld: true,
	},
	{
		Name:     "wp_get_media",
		Method:   "GetMedia",
		Title:    "Get Media",
		Category: "read",
		Resource: "media",
		Description: `Fetch one media library item by ID.

USE WHEN: User asks "what's the URL of media 31", "show the featured image details".

NOT FOR: Browsing the library (use wp_list_media).

PARAMETERS:
- media_id: Media ID (required)

RETURNS: id, title, source_url, link, media_type, mime_type, alt_text.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wp_list_media",
		Method:   "ListMedia",
		Title:    "List Media",
		Category: "list",
		Resource: "media",
		Description: `List or search the media library.

USE WHEN: User asks "which images do we have", "find the logo in the media library".

NOT FOR: A single known attachment (use wp_get_media).

PARAMETERS:
- per_page: 1-100 (default 10)
- page: Page number (default 1)
- media_type: image, video, audio, text or application
- search: Full-text search

RETURNS: count and media items.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wp_update_media",
		Method:   "UpdateMedia",
		Title:    "Update Media",
		Category: "update",
		Resource: "media",
		Description: `Edit attachment metadata. Only the fields you pass are sent.

USE WHEN: User says "add alt text to image 31", "change the caption".

NOT FOR: Replacing the file itself (upload a new one with wp_upload_media).

PARAMETERS:
- media_id: Media ID (required)
- title, alt_text, caption, description: optional

RETURNS: The updated media item.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// COMMENTS
	// ==========================================================================
	{
		Name:     "wp_get_comment",
		Method:   "GetComment",
		Title:    "Get Comment",
		Category: "read",
		Resource: "comment",
		Description: `Fetch one comment by ID.

USE WHEN: User asks "show comment 3", "what did the reader write".

NOT FOR: Listing comments on a post (use wp_list_comments).

PARAMETERS:
- comment_id: Comment ID (required)

RETURNS: id, post, parent, author_name, author_email, content, date, status, link.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wp_list_comments",
		Method:   "ListComments",
		Title:    "List Comments",
		Category: "list",
		Resource: "comment",
		Description: `List comments, optionally for one post or moderation status.

USE WHEN: User asks "any new comments", "show comments on post 5", "what's waiting for moderation".

NOT FOR: A single known comment (use wp_get_comment).

PARAMETERS:
- per_page: 1-100 (default 10)
- page: Page number (default 1)
- post: Post ID
- status: approve, hold, spam or trash
- search: Full-text search

RETURNS: count and comments with id, post, author_name, content, date, status, link.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wp_create_comment",
		Method:   "CreateComment",
		Title:    "Create Comment",
		Category: "create",
		Resource: "comment",
		Description: `Post a comment or a reply.

USE WHEN: User says "reply to comment 3", "leave a comment on post 5 thanking readers".

NOT FOR: Editing or moderating a comment (use wp_update_comment).

PARAMETERS:
- post: Post ID (required)
- content: Comment text (required)
- author_name: Author display name (required)
- author_email, parent: optional

RETURNS: id, post, author_name, content and status of the new comment.`,
		OpenWorld: true,
	},
	{
		Name:     "wp_update_comment",
		Method:   "UpdateComment",
		Title:    "Update Comment",
		Category: "update",
		Resource: "comment",
		Description: `Edit a comment's text or moderate it.

USE WHEN: User says "approve comment 3", "mark that comment as spam", "fix the typo in my reply".

NOT FOR: Removing a comment (use wp_delete_comment).

PARAMETERS:
- comment_id: Comment ID (required)
- content: New text
- status: approve, hold, spam or trash

RETURNS: id, post, author_name, content and status after the update.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "wp_delete_comment",
		Method:   "DeleteComment",
		Title:    "Delete Comment",
		Category: "delete",
		Resource: "comment",
		Description: `Move a comment to the trash, or delete it permanently.

USE WHEN: User says "delete comment 3", "remove that spam permanently".

NOT FOR: Marking as spam while keeping it (use wp_update_comment with status spam).

PARAMETERS:
- comment_id: Comment ID (required)
- force: true deletes permanently; omit to trash

RETURNS: deleted flag, plus trashed when the comment went to the trash.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// CATEGORIES
	// ==========================================================================
	{
		Name:     "wp_list_categories",
		Method:   "ListCategories",
		Title:    "List Categories",
		Category: "list",
		Resource: "category",
		Description: `List post categories.

USE WHEN: User asks "what categories exist", "which category ID is News", before assigning categories to a post.

NOT FOR: Tags (use wp_list_tags).

PARAMETERS:
- per_page: 1-100 (default 100)
- page: Page number (default 1)
- search: Match names
- parent: Parent category ID (0 for top level)
- hide_empty: Skip categories without posts

RETURNS: count and categories with id, name, slug, description, count, parent.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wp_get_category",
		Method:   "GetCategory",
		Title:    "Get Category",
		Category: "read",
		Resource: "category",
		Description: `Fetch one category by ID.

USE WHEN: User asks "what is category 4", "how many posts are in News".

NOT FOR: Finding a category by name (use wp_list_categories with search).

PARAMETERS:
- category_id: Category ID (required)

RETURNS: id, name, slug, description, count, parent.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wp_create_category",
		Method:   "CreateCategory",
		Title:    "Create Category",
		Category: "create",
		Resource: "category",
		Description: `Create a post category.

USE WHEN: User says "add a Tutorials category", "create a sub-category under News".

NOT FOR: Tags (use wp_create_tag).

PARAMETERS:
- name: Category name (required)
- description, slug, parent: optional

RETURNS: id, name and slug of the new category.`,
		OpenWorld: true,
	},
	{
		Name:     "wp_update_category",
		Method:   "UpdateCategory",
		Title:    "Update Category",
		Category: "update",
		Resource: "category",
		Description: `Rename or move a category. Only the fields you pass are sent.

USE WHEN: User says "rename category 4 to Updates", "change the category slug".

NOT FOR: Creating a category (use wp_create_category).

PARAMETERS:
- category_id: Category ID (required)
- name, description, slug, parent: optional

RETURNS: id, name and slug after the update.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// TAGS
	// ==========================================================================
	{
		Name:     "wp_list_tags",
		Method:   "ListTags",
		Title:    "List Tags",
		Category: "list",
		Resource: "tag",
		Description: `List post tags.

USE WHEN: User asks "which tags do we use", "find the golang tag ID".

NOT FOR: Categories (use wp_list_categories).

PARAMETERS:
- per_page: 1-100 (default 100)
- page: Page number (default 1)
- search: Match names
- hide_empty: Skip tags without posts

RETURNS: count and tags with id, name, slug, description, count.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wp_get_tag",
		Method:   "GetTag",
		Title:    "Get Tag",
		Category: "read",
		Resource: "tag",
		Description: `Fetch one tag by ID.

USE WHEN: User asks "what is tag 12", "how many posts use this tag".

NOT FOR: Finding a tag by name (use wp_list_tags with search).

PARAMETERS:
- tag_id: Tag ID (required)

RETURNS: id, name, slug, description, count.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wp_create_tag",
		Method:   "CreateTag",
		Title:    "Create Tag",
		Category: "create",
		Resource: "tag",
		Description: `Create a post tag.

USE WHEN: User says "add a tag called kubernetes".

NOT FOR: Categories (use wp_create_category).

PARAMETERS:
- name: Tag name (required)
- description, slug: optional

RETURNS: id, name and slug of the new tag.`,
		OpenWorld: true,
	},
	{
		Name:     "wp_update_tag",
		Method:   "UpdateTag",
		Title:    "Update Tag",
		Category: "update",
		Resource: "tag",
		Description: `Rename a tag or change its slug or description. Only the fields you pass are sent.

USE WHEN: User says "rename tag 12 to Go".

NOT FOR: Creating a tag (use wp_create_tag).

PARAMETERS:
- tag_id: Tag ID (required)
- name, description, slug: optional

RETURNS: id, name and slug after the update.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// SITE
	// ==========================================================================
	{
		Name:     "wp_get_site_info",
		Method:   "GetSiteInfo",
		Title:    "Get Site Info",
		Category: "read",
		Resource: "site",
		Description: `Describe the connected WordPress site and the account the server uses.

USE WHEN: User asks "which site am I connected to", "is the connection working", "what permissions do I have".

NOT FOR: Looking up other users (use wp_get_user).

PARAMETERS: none

RETURNS: url, name, description, home, namespaces, authentication and current_user (null when the account lookup fails). Either lookup can fail without failing the call.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}
