package hmi

import "fmt"

// Text draws a text label.
func (ctx *Context) Text(text string) {
	pos := ctx.ItemPos()
	ctx.addText(pos.X, pos.Y, text, ctx.style.TextColor)
	ctx.advanceCursor(ctx.MeasureText(text))
}

// Textf draws formatted text.
func (ctx *Context) Textf(format string, args ...any) {
	ctx.Text(fmt.Sprintf(format, args...))
}

// TextColored draws text with a specific color.
func (ctx *Context) TextColored(text string, color uint32) {
	pos := ctx.ItemPos()
	ctx.addText(pos.X, pos.Y, text, color)
	ctx.advanceCursor(ctx.MeasureText(text))
}

// TextDisabled draws text with the disabled color.
func (ctx *Context) TextDisabled(text string) {
	pos := ctx.ItemPos()
	ctx.addText(pos.X, pos.Y, text, ctx.style.TextDisabledColor)
	ctx.advanceCursor(ctx.MeasureText(text))
}

// LabelText draws a label and a value on the same line.
// Typical for process variables next to their tag names.
func (ctx *Context) LabelText(label, value string) {
	ctx.HStack()(func() {
		ctx.Text(label)
		ctx.Text(value)
	})
}

// Spacing adds vertical space.
func (ctx *Context) Spacing(pixels float32) {
	ctx.cursor.Y += pixels
}

// Separator draws a horizontal line.
func (ctx *Context) Separator() {
	w := ctx.currentLayoutWidth()
	y := ctx.cursor.Y + 2
	ctx.DrawList.AddLine(ctx.cursor.X, y, ctx.cursor.X+w, y, ctx.style.SeparatorColor, 1)
	ctx.cursor.Y += 4
}
