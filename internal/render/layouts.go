package render

// Built-in layout templates, used when the layout directory does not provide
// a file of the same name. Sites override any of them by dropping a file into
// the layout directory.
var defaultLayouts = map[string]string{
	"page.html": pageLayout,
	"post.html": postLayout,
	"list.html": listLayout,
	"item.html": itemLayout,
	"feed.xml":  feedRSSLayout,
	"item.xml":  itemRSSLayout,
	"feed.atom": feedAtomLayout,
	"item.atom": itemAtomLayout,
}

// DefaultLayouts returns a copy of the built-in templates, keyed by file
// name. Used by scaffolding to seed a site's layout directory.
func DefaultLayouts() map[string]string {
	out := make(map[string]string, len(defaultLayouts))
	for name, source := range defaultLayouts {
		out[name] = source
	}
	return out
}


const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{ .title }}</title>
<meta name="description" content="{{ .site_description }}">
<link rel="stylesheet" href="{{ .base_path }}/style.css">
</head>
<body class="{{ .body_class }}">
<header>
<h1><a href="{{ .base_path }}/">{{ .title }}</a></h1>
<p class="subtitle">{{ .site_subtitle }}</p>
<nav>
{{ range .menu }}<a href="{{ .target }}">{{ .label }}</a>
{{ end }}</nav>
</header>
<main>
`

const pageFoot = `</main>
<footer>
<p>&copy; {{ .current_year }} {{ .author }} {{ .social }}</p>
</footer>
</body>
</html>
`

const pageLayout = pageHead + `<article>
{{ .content }}
</article>
` + pageFoot

const postLayout = pageHead + `<article>
<h2>{{ .title }}</h2>
<p class="meta"><time datetime="{{ .short_date }}">{{ .human_date }}</time></p>
{{ .content }}
</article>
` + pageFoot

const listLayout = pageHead + `{{ .front_content }}
<ul class="post-list">
{{ .content }}</ul>
` + pageFoot

const itemLayout = `<li>
<a href="{{ .url }}">{{ .title }}</a>
<time datetime="{{ .short_date }}">{{ .human_date }}</time>
<p>{{ .summary }}</p>
</li>
`

const feedRSSLayout = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>{{ .title | html }}</title>
<link>{{ .index_url }}</link>
<description>{{ .site_description | html }}</description>
<lastBuildDate>{{ .rfc_2822_date }}</lastBuildDate>
{{ .content }}</channel>
</rss>
`

const itemRSSLayout = `<item>
<title>{{ .title | html }}</title>
<link>{{ .abs_url }}</link>
<guid>{{ .abs_url }}</guid>
<description>{{ .summary | html }}</description>
<pubDate>{{ .rfc_2822_date }}</pubDate>
</item>
`

const feedAtomLayout = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
<title>{{ .title | html }}</title>
<link href="{{ .feed_url }}" rel="self"/>
<link href="{{ .index_url }}"/>
<updated>{{ .rfc_3339_date }}</updated>
<id>{{ .index_url }}</id>
<author><name>{{ .author | html }}</name></author>
{{ .content }}</feed>
`

const itemAtomLayout = `<entry>
<title>{{ .title | html }}</title>
<link href="{{ .abs_url }}"/>
<id>{{ .abs_url }}</id>
<updated>{{ .rfc_3339_date }}</updated>
<summary>{{ .summary | html }}</summary>
</entry>
`
