// Package command provides command buffers for render passes.
//
// Passes record typed commands into a Buffer acquired from a Pool, wrap
// them in profiling scopes, and hand the buffer to the render context, which
// copies the commands for later playback. Buffers are returned to their
// pool as soon as they have been executed.
//
// # Example
//
//	buf := command.Get("outline pass")
//	defer command.Release(buf)
//
//	scope := command.NewProfilingScope(buf, command.GetSampler("Outline"))
//	buf.DrawRendererList(list)
//	scope.End()
//
//	ctx.ExecuteCommandBuffer(buf)
package command

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/toon/rendererlist"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdBeginSample       CommandType = iota // Open a profiling sample
	CmdEndSample                            // Close a profiling sample
	CmdDrawRendererList                     // Draw a materialized renderer list
	CmdClearRenderTarget                    // Clear colour and/or depth
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBeginSample:       "BeginSample",
	CmdEndSample:         "EndSample",
	CmdDrawRendererList:  "DrawRendererList",
	CmdClearRenderTarget: "ClearRenderTarget",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// BeginSampleCommand opens a named profiling sample.
type BeginSampleCommand struct {
	Name string
}

// Type implements Command.
func (BeginSampleCommand) Type() CommandType { return CmdBeginSample }

// EndSampleCommand closes the named profiling sample.
type EndSampleCommand struct {
	Name string
}

// Type implements Command.
func (EndSampleCommand) Type() CommandType { return CmdEndSample }

// DrawRendererListCommand draws every item of a renderer list.
type DrawRendererListCommand struct {
	List *rendererlist.List
}

// Type implements Command.
func (DrawRendererListCommand) Type() CommandType { return CmdDrawRendererList }

// ClearRenderTargetCommand clears the active render target.
type ClearRenderTargetCommand struct {
	Color bool
	Depth bool
	Value gputypes.Color
}

// Type implements Command.
func (ClearRenderTargetCommand) Type() CommandType { return CmdClearRenderTarget }

// Buffer is an ordered list of commands recorded by a pass.
//
// Buffer is not safe for concurrent use.
type Buffer struct {
	name     string
	commands []Command
}

// NewBuffer creates an empty, named buffer outside of any pool.
func NewBuffer(name string) *Buffer {
	return &Buffer{
		name:     name,
		commands: make([]Command, 0, 8),
	}
}

// Name returns the buffer's debug name.
func (b *Buffer) Name() string {
	return b.name
}

// Commands returns the recorded commands.
// The slice is only valid until the buffer is cleared or released.
func (b *Buffer) Commands() []Command {
	return b.commands
}

// Len returns the number of recorded commands.
func (b *Buffer) Len() int {
	return len(b.commands)
}

// Clear removes all recorded commands.
func (b *Buffer) Clear() {
	clear(b.commands)
	b.commands = b.commands[:0]
}

// BeginSample records the start of a named profiling sample.
func (b *Buffer) BeginSample(name string) {
	b.commands = append(b.commands, BeginSampleCommand{Name: name})
}

// EndSample records the end of a named profiling sample.
func (b *Buffer) EndSample(name string) {
	b.commands = append(b.commands, EndSampleCommand{Name: name})
}

// DrawRendererList records a draw of every item in list.
// A nil or empty list is recorded as is and draws nothing.
func (b *Buffer) DrawRendererList(list *rendererlist.List) {
	b.commands = append(b.commands, DrawRendererListCommand{List: list})
}

// ClearRenderTarget records a clear of the active target's colour and/or
// depth attachments.
func (b *Buffer) ClearRenderTarget(color, depth bool, value gputypes.Color) {
	b.commands = append(b.commands, ClearRenderTargetCommand{Color: color, Depth: depth, Value: value})
}
