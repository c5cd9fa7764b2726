package render

func NotFoundPage() string {
	return section("", `<div class="panel">Page not found. <a href="/">Go home</a></div>`)
}
