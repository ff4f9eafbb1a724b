package main

import "image"

// PressBar signals that button 1 went down on a bar.
type PressBar struct {
	ID int
	At image.Point
}

// DragTo signals that the pointer moved with button 1 held.
type DragTo struct {
	At image.Point
}

// Release signals that button 1 came up.
type Release struct{}

// Step signals a nudge of one bar, in percent, from the keyboard or
// the scroll wheel.
type Step struct {
	ID    int
	Delta int
}

// NextBar signals that keyboard focus moves to the next bar.
type NextBar struct{}

// Relayout signals that the window size changed.
type Relayout struct {
	Width  int
	Height int
}

// Quit signals that the app should exit.
type Quit struct{}
