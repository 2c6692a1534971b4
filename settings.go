package godeck

// SlideShowSettings configures the p:showPr block of presentation.xml.
type SlideShowSettings struct {
	Loop          bool
	ShowNarration bool
	UseTimings    bool
	// KioskMode presents in a browsed-at-kiosk window.
	KioskMode bool
	// StartSlide/EndSlide restrict the show to a 1-based slide range.
	// Zero values show everything.
	StartSlide int
	EndSlide   int
	// PenColor is the annotation pen color during the show.
	PenColor Color
}

// PrintWhat selects the printed layout.
type PrintWhat string

const (
	PrintSlides    PrintWhat = "slides"
	PrintHandouts4 PrintWhat = "handouts4"
	PrintHandouts6 PrintWhat = "handouts6"
	PrintNotes     PrintWhat = "notes"
	PrintOutline   PrintWhat = "outline"
)

// PrintColorMode selects the print color treatment.
type PrintColorMode string

const (
	PrintColor      PrintColorMode = "clr"
	PrintGrayscale  PrintColorMode = "gray"
	PrintBlackWhite PrintColorMode = "bw"
)

// PrintSettings configures the p:prnPr block of presentation.xml.
type PrintSettings struct {
	What            PrintWhat
	ColorMode       PrintColorMode
	HiddenSlides    bool
	ScaleToFitPaper bool
	FrameSlides     bool
}

func (s *SlideShowSettings) validate(slideCount int) error {
	if s.StartSlide == 0 && s.EndSlide == 0 {
		return nil
	}
	if s.StartSlide < 1 || s.EndSlide < s.StartSlide || s.EndSlide > slideCount {
		return newError(ErrInvalidInput,
			"slide show range %d..%d invalid for %d slides", s.StartSlide, s.EndSlide, slideCount)
	}
	return nil
}
