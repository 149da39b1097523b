package scene

import (
	"github.com/google/uuid"

	"github.com/anchorlayer/anchorage/pkg/layout"
)

// Visibility values.
const (
	VisibilityVisible   = "visible"
	VisibilityInvisible = "invisible"
	VisibilityGone      = "gone"
)

// Chain styles.
const (
	ChainSpread       = "spread"
	ChainSpreadInside = "spread_inside"
	ChainPacked       = "packed"
)

// Anchor types.
const (
	AnchorLeft     = "left"
	AnchorTop      = "top"
	AnchorRight    = "right"
	AnchorBottom   = "bottom"
	AnchorBaseline = "baseline"
	AnchorCenter   = "center"
)

// Connection creators.
const (
	CreatorUser = "user"
	CreatorAuto = "auto"
)

// RootWidget is the implicit root container's name in connection
// references.
const RootWidget = layout.RootName

// Scene is one stored constraint layout document.
type Scene struct {
	ID     string `json:"id" bson:"_id"`
	Name   string `json:"name,omitempty" bson:"name,omitempty"`
	Width  int    `json:"width" bson:"width"`
	Height int    `json:"height" bson:"height"`

	Widgets     []Widget     `json:"widgets" bson:"widgets"`
	Connections []Connection `json:"connections,omitempty" bson:"connections,omitempty"`
}

// Widget is the serialized form of one widget. Zero-valued optional
// fields are omitted; bias defaults to 0.5 when absent.
type Widget struct {
	Name   string `json:"name" bson:"name"`
	Parent string `json:"parent,omitempty" bson:"parent,omitempty"`

	X      int `json:"x" bson:"x"`
	Y      int `json:"y" bson:"y"`
	Width  int `json:"width" bson:"width"`
	Height int `json:"height" bson:"height"`

	Visibility string `json:"visibility,omitempty" bson:"visibility,omitempty"`

	Container       bool `json:"container,omitempty" bson:"container,omitempty"`
	HandlesInternal bool `json:"handles_internal,omitempty" bson:"handles_internal,omitempty"`

	Baseline int `json:"baseline,omitempty" bson:"baseline,omitempty"`

	HorizontalBias *float64 `json:"horizontal_bias,omitempty" bson:"horizontal_bias,omitempty"`
	VerticalBias   *float64 `json:"vertical_bias,omitempty" bson:"vertical_bias,omitempty"`

	HorizontalChainStyle string `json:"horizontal_chain_style,omitempty" bson:"horizontal_chain_style,omitempty"`
	VerticalChainStyle   string `json:"vertical_chain_style,omitempty" bson:"vertical_chain_style,omitempty"`
}

// Connection is one serialized anchor connection: the From widget's
// FromAnchor targets the To widget's ToAnchor.
type Connection struct {
	From       string `json:"from" bson:"from"`
	FromAnchor string `json:"from_anchor" bson:"from_anchor"`
	To         string `json:"to" bson:"to"`
	ToAnchor   string `json:"to_anchor" bson:"to_anchor"`
	Creator    string `json:"creator,omitempty" bson:"creator,omitempty"`
}

// NewID returns a fresh scene document ID.
func NewID() string { return uuid.NewString() }
