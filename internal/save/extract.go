package save

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/ianaindex"
)

// node is a generic view of one XML element: its tag, the character data
// directly inside it, and its child elements in document order.
type node struct {
	XMLName  xml.Name
	Text     string `xml:",chardata"`
	Children []node `xml:",any"`
}

// Extract reads the save file at path and returns the game version together
// with the mods recorded in its meta block.
//
// The meta element must be a direct child of the document root. Within it,
// gameVersion supplies the version string and modIds/modSteamIds/modNames
// supply three parallel lists zipped positionally into ModRecord values.
// When a recognized tag appears more than once the last occurrence wins;
// unrecognized tags are ignored. A save listing zero mods is valid and
// yields an empty record list.
func Extract(path string) (*Extraction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read save file: %w", err)
	}

	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charsetReader

	var root node
	if err := decoder.Decode(&root); err != nil {
		return nil, &MalformedInputError{Path: path, Err: err}
	}

	meta := findMeta(&root)
	if meta == nil {
		return nil, &StructureError{Path: path, Reason: "missing meta element; check that the file really is a RimWorld save"}
	}

	var gameVersion string
	var ids, steamIDs, names []string
	for i := range meta.Children {
		child := &meta.Children[i]
		switch child.XMLName.Local {
		case "gameVersion":
			gameVersion = child.Text
		case "modIds":
			ids = childTexts(child)
		case "modSteamIds":
			steamIDs = childTexts(child)
		case "modNames":
			names = childTexts(child)
		}
	}

	if gameVersion == "" {
		return nil, &StructureError{Path: path, Reason: "game version is empty"}
	}
	if len(ids) != len(steamIDs) || len(ids) != len(names) {
		return nil, &StructureError{
			Path: path,
			Reason: fmt.Sprintf("mismatched mod attribute counts: %d ids, %d steam ids, %d names",
				len(ids), len(steamIDs), len(names)),
		}
	}

	mods := make([]ModRecord, len(ids))
	for i := range ids {
		mods[i] = ModRecord{ID: ids[i], SteamID: steamIDs[i], Name: names[i]}
	}

	return &Extraction{GameVersion: gameVersion, Mods: mods}, nil
}

// findMeta returns the first direct child of the root element whose tag is
// exactly "meta".
func findMeta(root *node) *node {
	for i := range root.Children {
		if root.Children[i].XMLName.Local == "meta" {
			return &root.Children[i]
		}
	}
	return nil
}

// childTexts collects the text content of each direct child of a list
// element, in document order. The item tag name is not inspected; the save
// format uses li throughout.
func childTexts(parent *node) []string {
	texts := make([]string, 0, len(parent.Children))
	for i := range parent.Children {
		texts = append(texts, parent.Children[i].Text)
	}
	return texts
}

// charsetReader decodes documents whose XML declaration names a non-UTF-8
// encoding. Stock saves are UTF-8; this keeps hand-edited files readable.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported document charset %q", charset)
	}
	return enc.NewDecoder().Reader(input), nil
}
