// Package ui is the storefront shell rendered with Bubble Tea. It is the
// rendering tree that consumes the uistate store.
//
// Core pieces:
//   - ShellModel: root model; owns the store, the cart hook and the frame document
//   - View: a panel (cart drawer, menus, search, modal content) with its own update/view
//   - KeybindRegistry / KeyHandler: single keys plus SPC-prefixed leader sequences
//   - EventLoopScheduler: delivers store timers back to the program as messages
//   - FrameDocument: embedded frames whose visibility the store toggles
package ui
