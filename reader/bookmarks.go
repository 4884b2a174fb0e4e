package reader

import (
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"github.com/tsawler/titulus/model"
)

// readBookmarks loads the document's native outline tree, if any, and
// flattens it depth first with nesting depth recorded per entry. Page
// numbers stay 1-based as pdfcpu reports them.
func readBookmarks(path string) ([]model.Bookmark, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tree, err := api.Bookmarks(f, nil)
	if err != nil {
		return nil, err
	}

	var flat []model.Bookmark
	flattenBookmarks(tree, 1, &flat)
	return flat, nil
}

func flattenBookmarks(nodes []pdfcpu.Bookmark, level int, out *[]model.Bookmark) {
	for _, node := range nodes {
		*out = append(*out, model.Bookmark{
			Level: level,
			Title: node.Title,
			Page:  node.PageFrom,
		})
		if len(node.Kids) > 0 {
			flattenBookmarks(node.Kids, level+1, out)
		}
	}
}
