// Command subtickctl drives a subtick-scheduled cellular grid headless,
// through an ebiten GUI, or as a serial-vs-parallel benchmark.
package main

func main() {
	Execute()
}
