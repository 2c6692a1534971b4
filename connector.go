package godeck

// ConnectorKind selects the connector routing.
type ConnectorKind int

const (
	ConnectorStraight ConnectorKind = iota
	ConnectorElbow
	ConnectorCurved
)

// preset returns the DrawingML preset geometry name.
func (k ConnectorKind) preset() string {
	switch k {
	case ConnectorElbow:
		return "bentConnector3"
	case ConnectorCurved:
		return "curvedConnector3"
	default:
		return "straightConnector1"
	}
}

// ArrowHead decorates a connector end.
type ArrowHead string

const (
	ArrowNone     ArrowHead = "none"
	ArrowTriangle ArrowHead = "triangle"
	ArrowStealth  ArrowHead = "stealth"
	ArrowDiamond  ArrowHead = "diamond"
	ArrowOval     ArrowHead = "oval"
)

// ConnectionSite is a glue point on a shape's bounding box. The numbering
// matches the preset-geometry connection sites: edges first, then corners,
// then center.
type ConnectionSite int

const (
	SiteTop         ConnectionSite = 0
	SiteRight       ConnectionSite = 1
	SiteBottom      ConnectionSite = 2
	SiteLeft        ConnectionSite = 3
	SiteTopLeft     ConnectionSite = 4
	SiteTopRight    ConnectionSite = 5
	SiteBottomLeft  ConnectionSite = 6
	SiteBottomRight ConnectionSite = 7
	SiteCenter      ConnectionSite = 8
)

// ConnectionAnchor glues a connector end to a shape.
type ConnectionAnchor struct {
	ShapeID int // slide-local shape ID of the target
	Site    ConnectionSite
}

// Connector is a line routed between two points, optionally glued to
// shapes at either end.
type Connector struct {
	BaseElement
	kind        ConnectorKind
	start       Position
	end         Position
	startAnchor *ConnectionAnchor
	endAnchor   *ConnectionAnchor
	startArrow  ArrowHead
	endArrow    ArrowHead
	color       Color
	width       Dimension
}

func (*Connector) element() {}

// NewConnector routes a connector from start to end.
func NewConnector(kind ConnectorKind, start, end Position) *Connector {
	return &Connector{
		kind:  kind,
		start: start,
		end:   end,
		width: Points(1),
		color: RGB("000000"),
	}
}

// SetStartAnchor glues the start to a shape.
func (c *Connector) SetStartAnchor(a *ConnectionAnchor) *Connector {
	c.startAnchor = a
	return c
}

// SetEndAnchor glues the end to a shape.
func (c *Connector) SetEndAnchor(a *ConnectionAnchor) *Connector {
	c.endAnchor = a
	return c
}

// SetArrows sets the head and tail decorations.
func (c *Connector) SetArrows(start, end ArrowHead) *Connector {
	c.startArrow = start
	c.endArrow = end
	return c
}

// SetLine sets the stroke color and width.
func (c *Connector) SetLine(color Color, width Dimension) *Connector {
	c.color = color
	c.width = width
	return c
}

func (c *Connector) validate() error {
	if err := c.color.validate(); err != nil {
		return err
	}
	for _, a := range []*ConnectionAnchor{c.startAnchor, c.endAnchor} {
		if a == nil {
			continue
		}
		if a.Site < SiteTop || a.Site > SiteCenter {
			return newError(ErrInvalidInput, "connection site %d out of range", a.Site)
		}
	}
	return nil
}

// bounds resolves the connector's frame: offset at the top-left of the two
// endpoints, extent spanning them, with flips recorded when the line runs
// leftward or upward.
func (c *Connector) bounds(slideW, slideH int64) (x, y, cx, cy int64, flipH, flipV bool, err error) {
	x1, err := c.start.X.Resolve(slideW)
	if err != nil {
		return
	}
	y1, err := c.start.Y.Resolve(slideH)
	if err != nil {
		return
	}
	x2, err := c.end.X.Resolve(slideW)
	if err != nil {
		return
	}
	y2, err := c.end.Y.Resolve(slideH)
	if err != nil {
		return
	}
	if x2 < x1 {
		x1, x2 = x2, x1
		flipH = true
	}
	if y2 < y1 {
		y1, y2 = y2, y1
		flipV = true
	}
	return x1, y1, x2 - x1, y2 - y1, flipH, flipV, nil
}
