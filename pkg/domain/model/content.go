package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/quickfolio/quickfolio/pkg/domain/types"
)

// Profile is the headline block of a link-in-bio page.
type Profile struct {
	Name     string `json:"name" firestore:"name"`
	Headline string `json:"headline" firestore:"headline"`
	Avatar   string `json:"avatar,omitempty" firestore:"avatar"`
}

// Link is one entry of a link-in-bio page.
type Link struct {
	Text string `json:"text" firestore:"text"`
	URL  string `json:"url" firestore:"url"`
	Icon string `json:"icon,omitempty" firestore:"icon"`
	Type string `json:"type,omitempty" firestore:"type"`
}

// ContentModel is the validated structured content a deployment renders into
// the personalized file tree.
type ContentModel struct {
	Profile Profile `json:"profile" firestore:"profile"`
	Links   []Link  `json:"links" firestore:"links"`
}

// NormalizeLinkURL accepts mailto:, tel: and the placeholder "#" verbatim and
// prefixes scheme-less URLs with https://.
func NormalizeLinkURL(v string) string {
	if strings.HasPrefix(v, "mailto:") || strings.HasPrefix(v, "tel:") || v == "#" {
		return v
	}
	if !strings.HasPrefix(v, "http://") && !strings.HasPrefix(v, "https://") {
		return "https://" + v
	}
	return v
}

func (x *ContentModel) Validate() error {
	if x.Profile.Name == "" {
		return goerr.Wrap(types.ErrValidationFailed, "profile name is empty")
	}
	for i := range x.Links {
		if x.Links[i].Text == "" {
			return goerr.Wrap(types.ErrValidationFailed, "link text is empty", goerr.V("index", i))
		}
		if x.Links[i].URL == "" {
			return goerr.Wrap(types.ErrValidationFailed, "link URL is empty", goerr.V("index", i))
		}
		x.Links[i].URL = NormalizeLinkURL(x.Links[i].URL)
	}
	return nil
}
