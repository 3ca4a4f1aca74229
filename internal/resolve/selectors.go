package resolve

// contentSelectors are tried in order against a fetched article page;
// the first match is treated as the main content container.
var contentSelectors = []string{
	"article", "main", "div.entry-content", "div.article-content",
	"div.td-post-content", "div.post-content", "div.gsc_oci_ext",
	`div[itemprop="articleBody"]`, `div[role="main"]`, "section.content",
	"div#article-body", "div.story-body", "div.body-content",
	"div.news-content", "div.story-fulltext", "div.article-text",
	`div[class*="content-wrapper"]`, `div[id*="article-"]`,
	`div[class*="article-"]`, "div.l-article-content",
	"div.paywall-content", `div[class*="body-copy"]`, "div.article-body",
}

// junkSelectors name the non-article substructures stripped from the
// matched container before text extraction.
var junkSelectors = []string{
	"script", "style", "aside", "nav", "footer", "header", "form",
	".ad", ".ads", `[class*="advert"]`, `[id*="ad-"]`, `[class*="ad-"]`,
	".newsletter", ".social-share", ".related-posts", ".comments",
	".share-bar", ".read-more", ".post-meta", ".author-info",
	".subscribe", ".sponsored", ".promo", `[id*="sticky"]`,
	"figure", "img", "video", "iframe", "svg", "button", "input",
	".skip-link", ".breadcrumbs", ".wp-block-group", ".wp-block-columns",
	".sidebar", `[class*="sidebar"]`, `[id*="sidebar"]`,
	".cookie-notice", ".gdpr-banner", ".modal", ".popup",
	".author-box", ".source-box", ".tags", ".category-links",
	".entry-utility", ".entry-meta", ".article-meta",
	".flex-video", ".caption", "blockquote",
}
