/*
Package m3 is a Material Design 3 theme and widget set for Gio.

A Theme derives a light and a dark color scheme from a single seed color and
hands them to the widgets drawn with it: a filled Button, a Checkbox and a
TextField backed by the edit package.

	th := m3.NewTheme(m3.DefaultSeed, color.Light)

	var (
		ok    widget.Clickable
		agree bool
		name  string
		box   widget.Clickable
	)

	func frame(gtx layout.Context) {
		if th.Button(&ok, "OK").Layout(gtx).Clicked {
			// ...
		}
		th.Checkbox(&box, &agree, "I agree").Layout(gtx)
		th.TextField(1, &name, "Name").Layout(gtx)
	}

The gallery command of cmd/m3 shows every widget in a window:

	$ m3 gallery --seed "#6750a4" --dark
*/
package m3
