package godeck

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// ImageFormat tags the encoding of embedded picture bytes.
type ImageFormat string

const (
	ImagePNG  ImageFormat = "png"
	ImageJPEG ImageFormat = "jpeg"
	ImageGIF  ImageFormat = "gif"
	ImageBMP  ImageFormat = "bmp"
	ImageTIFF ImageFormat = "tiff"
)

// extension returns the media part extension.
func (f ImageFormat) extension() string { return string(f) }

// contentType returns the MIME type declared in the content-types manifest.
func (f ImageFormat) contentType() string {
	switch f {
	case ImagePNG:
		return "image/png"
	case ImageJPEG:
		return "image/jpeg"
	case ImageGIF:
		return "image/gif"
	case ImageBMP:
		return "image/bmp"
	case ImageTIFF:
		return "image/tiff"
	default:
		return "application/octet-stream"
	}
}

// CropRect trims a picture. Each side is a fraction of the source image
// in 1/100000 units (50000 = crop half).
type CropRect struct {
	Left, Top, Right, Bottom int
}

// ImageEffect is one entry of a picture's ordered effect list.
type ImageEffect int

const (
	EffectShadow ImageEffect = iota
	EffectReflection
	EffectGlow
	EffectSoftEdges
	EffectBlur
	EffectGrayscale
)

// Picture is an embedded raster image.
type Picture struct {
	BaseElement
	data      []byte
	format    ImageFormat
	crop      *CropRect
	effects   []ImageEffect
	hyperlink *Hyperlink
}

func (*Picture) element() {}

// NewPicture embeds image bytes. The format is sniffed from the data; an
// unrecognizable encoding reports ErrUnsupportedFormat.
func NewPicture(data []byte, t Transform) (*Picture, error) {
	format, err := sniffImageFormat(data)
	if err != nil {
		return nil, err
	}
	p := &Picture{data: data, format: format}
	p.transform = t
	return p, nil
}

// NewPictureFromFile embeds an image read from disk.
func NewPictureFromFile(path string, t Transform) (*Picture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapError(ErrMissingAsset, err, "image %s", path)
	}
	return NewPicture(data, t)
}

// GetFormat returns the sniffed image format.
func (p *Picture) GetFormat() ImageFormat { return p.format }

// SetCrop sets the crop rectangle.
func (p *Picture) SetCrop(c *CropRect) *Picture {
	p.crop = c
	return p
}

// AddEffect appends a visual effect. Order is preserved in the output.
func (p *Picture) AddEffect(e ImageEffect) *Picture {
	p.effects = append(p.effects, e)
	return p
}

// SetHyperlink makes the picture clickable.
func (p *Picture) SetHyperlink(h *Hyperlink) *Picture {
	p.hyperlink = h
	return p
}

// IntrinsicSize decodes the image header and returns the natural extent in
// EMU assuming 96 DPI.
func (p *Picture) IntrinsicSize() (w, h int64, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(p.data))
	if err != nil {
		return 0, 0, wrapError(ErrUnsupportedFormat, err, "decode image header")
	}
	return int64(cfg.Width) * emuPerInch / 96, int64(cfg.Height) * emuPerInch / 96, nil
}

// sniffImageFormat identifies the encoding by decoding the header with the
// registered image codecs.
func sniffImageFormat(data []byte) (ImageFormat, error) {
	_, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", wrapError(ErrUnsupportedFormat, err, "unrecognized image data")
	}
	switch name {
	case "png":
		return ImagePNG, nil
	case "jpeg":
		return ImageJPEG, nil
	case "gif":
		return ImageGIF, nil
	case "bmp":
		return ImageBMP, nil
	case "tiff":
		return ImageTIFF, nil
	}
	return "", newError(ErrUnsupportedFormat, "image format %q not supported", name)
}
