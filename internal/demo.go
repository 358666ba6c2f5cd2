package internal

// demoOutline is the tree shown on startup until outlines can be loaded from disk. Each
// entry is indented by one tab per level below the root.
var demoOutline = []string{
	"Hello",
	"\tThis is title 2",
	"\t\tThis is a third subtitle",
	"\tGroceries",
	"\t\tMilk",
	"\t\tBread",
	"\tEditor",
	"\t\tBackspace in insert mode",
	"\t\tSave and load outlines",
}

// NewDemoOutline builds the startup tree. The root and its first child start open.
func NewDemoOutline() (*Item, error) {
	root, err := ParseIndentedOutline(demoOutline)
	if err != nil {
		return nil, err
	}
	root.open = true
	root.children[0].open = true
	return root, nil
}
