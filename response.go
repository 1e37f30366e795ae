package quickpay

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

const historyElement = "history"

var errNoResponseElement = errors.New("no <response> element")

// parseResponse reads the first <response> element of body. Leaf children go
// to Fields; <history> blocks go to History; other nested blocks are
// flattened into Fields as "parent.child".
func parseResponse(body []byte) (*Response, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))
	dec.CharsetReader = charset.NewReaderLabel

	if err := seekResponse(dec); err != nil {
		return nil, err
	}

	res := &Response{Fields: map[string]string{}}

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("can't read <response>: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			text, children, err := readElement(dec)
			if err != nil {
				return nil, fmt.Errorf("can't read <%s>: %w", t.Name.Local, err)
			}

			name := t.Name.Local
			switch {
			case children == nil:
				res.Fields[name] = text
			case name == historyElement:
				res.History = append(res.History, children)
			default:
				for k, v := range children {
					res.Fields[name+"."+k] = v
				}
			}
		case xml.EndElement:
			res.QPStat = res.Fields["qpstat"]
			res.QPStatMsg = res.Fields["qpstatmsg"]
			res.ChStat = res.Fields["chstat"]
			res.ChStatMsg = res.Fields["chstatmsg"]

			return res, nil
		}
	}
}

func seekResponse(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return errNoResponseElement
		}
		if err != nil {
			return err
		}

		if start, ok := tok.(xml.StartElement); ok && start.Name.Local == "response" {
			return nil
		}
	}
}

// readElement consumes tokens up to the end of the current element. children
// is nil for a leaf; deeper levels are merged by local name.
func readElement(dec *xml.Decoder) (string, map[string]string, error) {
	var (
		text     strings.Builder
		children map[string]string
	)

	for {
		tok, err := dec.Token()
		if err != nil {
			return "", nil, err
		}

		switch t := tok.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			v, sub, err := readElement(dec)
			if err != nil {
				return "", nil, err
			}

			if children == nil {
				children = map[string]string{}
			}

			if sub == nil {
				children[t.Name.Local] = v
				continue
			}

			for k, s := range sub {
				children[k] = s
			}
		case xml.EndElement:
			return strings.TrimSpace(text.String()), children, nil
		}
	}
}
