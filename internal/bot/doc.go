package bot

// Package bot is the Telegram front end: it owns the per-chat selection
// state machine, renders the action and quality menus, and runs the
// fetch → size-enforce → deliver chain for a selected tier. All per-chat
// state lives in an explicit session map; nothing is stored globally.
