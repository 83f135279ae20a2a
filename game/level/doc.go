// Package level loads Sokoban level descriptions from JSON files and
// compiles them into engine grids.
//
// A level file holds the grid layout as rows of characters plus a legend
// mapping each character to a cell kind:
//
//	{
//	  "name": "Warehouse",
//	  "width": 7,
//	  "height": 5,
//	  "layout": [
//	    "#######",
//	    "#@$.+.#",
//	    "#######"
//	  ]
//	}
//
// The default legend maps '#' to wall, '.' and ' ' to floor, '+' to goal,
// '@' to the player, '$' to a movable crate, 'X' to an immovable crate,
// '*' to a crate already on a goal and '!' to the player on a goal. A
// file may supply its own legend, but every legend value must be one of
// those closed cell kinds.
//
// Validation happens eagerly at load time and reports the specific
// violation: a bad level never produces a partial game. Because a cell is
// a single character, a wall and an entity can never occupy the same
// position in a level file.
package level
