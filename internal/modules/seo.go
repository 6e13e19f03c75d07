package modules

import (
	"github.com/roach88/boxcar/internal/composer"
)

const (
	seoPayloads = payloads("seo")
	layoutPath  = "app/views/layouts/application.html.erb"
)

var seo = composer.Module{
	Name:    "seo",
	Summary: "Meta tags and active navigation links",
	Doc: `Adds meta-tags, rendered in the application layout after csp_meta_tag
with the app title as site name, and active_link_to. SeoHelper offers
page_title, page_description, page_image and page_seo; NavigationHelper
offers nav_link_to, which marks the current page's link active.`,
	Apply: func(cc *composer.Context) error {
		return run(cc,
			gems("meta-tags", "active_link_to"),
			seoPayloads.file("config/initializers/meta_tags.rb"),
			say("Adding meta tags to layout..."),
			seoPayloads.after(layoutPath, "<%= csp_meta_tag %>\n", "meta_tags.html.erb"),
			seoPayloads.file("app/helpers/seo_helper.rb"),
			seoPayloads.file("app/helpers/navigation_helper.rb"),
		)
	},
}
