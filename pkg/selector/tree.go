package selector

import (
	"sort"
	"strings"
)

type treeNode struct {
	name     string
	children map[string]*treeNode
}

// Tree renders the selected relative paths as an indented ASCII tree, one
// entry per line. Directories come first, then files, each group ordered
// case-insensitively; directory names carry a trailing '/'.
func Tree(files []string) []string {
	root := &treeNode{children: map[string]*treeNode{}}
	for _, f := range files {
		node := root
		for _, part := range strings.Split(f, "/") {
			child, ok := node.children[part]
			if !ok {
				child = &treeNode{name: part}
				node.children[part] = child
			}
			if child.children == nil {
				child.children = map[string]*treeNode{}
			}
			node = child
		}
	}

	var out []string
	walkTree(root, "", &out)
	return out
}

func walkTree(node *treeNode, prefix string, out *[]string) {
	entries := make([]*treeNode, 0, len(node.children))
	for _, c := range node.children {
		entries = append(entries, c)
	}
	sort.Slice(entries, func(i, j int) bool {
		di, dj := len(entries[i].children) > 0, len(entries[j].children) > 0
		if di != dj {
			return di
		}
		li, lj := strings.ToLower(entries[i].name), strings.ToLower(entries[j].name)
		if li != lj {
			return li < lj
		}
		return entries[i].name < entries[j].name
	})

	for i, e := range entries {
		connector, extension := "|-- ", "|   "
		if i == len(entries)-1 {
			connector, extension = "`-- ", "    "
		}
		if len(e.children) > 0 {
			*out = append(*out, prefix+connector+e.name+"/")
			walkTree(e, prefix+extension, out)
		} else {
			*out = append(*out, prefix+connector+e.name)
		}
	}
}
