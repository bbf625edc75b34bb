package format

import "fmt"

type Format int8

const (
	HTML Format = iota
	Csv
)

func UnmarshalText(text string) (Format, error) {
	switch text {
	case "html":
		return HTML, nil
	case "csv":
		return Csv, nil
	default:
		return 0, fmt.Errorf("invalid format: %q", text)
	}
}

func (f Format) String() string {
	switch f {
	case HTML:
		return "html"
	case Csv:
		return "csv"
	default:
		return fmt.Sprintf("Format(%d)", int8(f))
	}
}

// Ext is the file extension used for the default output name.
func (f Format) Ext() string {
	return "." + f.String()
}
