// Package tui renders the colorpick tools in a terminal.
//
// Core abstraction is Region, a clipped rectangle over a tcell.Screen. All
// drawing is relative to region bounds, so pages compose by nesting Sub().
//
// Design principles:
//   - Immediate mode: App owns all state and redraws the full frame each tick
//   - One notification element (Toast) is created by the caller and injected
//   - Colors are color.RGB end to end; conversion to the terminal's palette
//     happens only in Region.Cell
//
// Usage pattern:
//
//	screen, _ := tcell.NewScreen()
//	toast := tui.NewToast(tui.DefaultToastDuration, time.Now)
//	copier := clipboard.NewCopier(clipboard.System(os.Stdout), toast, logger)
//	app := tui.NewApp(screen, toast, copier, tui.Options{Mode: mode}, logger)
//	err := app.Run(ctx)
package tui
