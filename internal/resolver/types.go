package resolver

// Wire types for the Instagram web JSON endpoint. Only the fields the
// classifier needs are decoded.

const (
	typenameSidecar = "GraphSidecar"

	// productTypeClips marks short-form vertical video (reels).
	productTypeClips = "clips"
)

type mediaDocument struct {
	Graphql struct {
		ShortcodeMedia *shortcodeMedia `json:"shortcode_media"`
	} `json:"graphql"`
}

type shortcodeMedia struct {
	Typename    string      `json:"__typename"`
	Shortcode   string      `json:"shortcode"`
	IsVideo     bool        `json:"is_video"`
	VideoURL    string      `json:"video_url"`
	DisplayURL  string      `json:"display_url"`
	ProductType string      `json:"product_type"`
	Owner       mediaOwner  `json:"owner"`
	Sidecar     sidecarEdge `json:"edge_sidecar_to_children"`
}

type mediaOwner struct {
	Username  string `json:"username"`
	IsPrivate bool   `json:"is_private"`
}

type sidecarEdge struct {
	Edges []struct {
		Node sidecarNode `json:"node"`
	} `json:"edges"`
}

type sidecarNode struct {
	IsVideo    bool   `json:"is_video"`
	VideoURL   string `json:"video_url"`
	DisplayURL string `json:"display_url"`
}
