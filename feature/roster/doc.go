// Package roster filters the operator roster the planner shows.
//
// Filters group selected values by category. A category with no selection
// does not constrain, values inside one category are alternatives, and all
// selected categories must hold. MASTERY and MODULELEVEL treat 0 as "every
// level is 0". Name search ignores case and punctuation and tolerates small
// typos.
package roster
