/*
Package keybinds provides customizable keyboard binding management for the
user table.

# Key Concepts

Contexts:
  - Global: bindings available everywhere (ctrl+c)
  - Normal: the table has focus
  - Filter: the country filter input has focus
  - Help: the help overlay is open

A key bound in a specific context overrides the same key in global.

Actions are constants (ActionToggleColors, ActionDeleteRow, ...). The TUI
asks the registry which action a key means and never compares raw keys.

# Configuration File Format

~/.userlist/keybinds.json maps actions to comma-separated keys per context.
Comments and trailing commas are accepted:

	{
	  "version": "1.0",
	  // vim users
	  "normal": {
	    "navigate_down": "down,j",
	    "delete_row": "x",
	    "toggle_colors": "", // unbound
	  },
	}

An action listed in a section loses its default keys in that context.

# Multi-Key Sequences

Two plain characters such as "gg" form a sequence. The first key is held
as pending until the next key arrives; if the pair is not bound the second
key is matched on its own.

# Validation

The validator rejects unknown actions, empty keys, one key bound to two
actions in a section, and rebinding ctrl+c. It warns about shadowed global
keys, single keys hidden by a sequence, and an unbound quit.

# Example Usage

	registry, err := keybinds.LoadOrDefault(config.KeybindsFile)
	if err != nil {
		return err
	}

	action, ok, partial := registry.MatchMultiKey(keybinds.ContextNormal, msg.String())
*/
package keybinds
