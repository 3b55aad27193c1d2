package genome

// NDEC is the number of decisions a brain holds a chromosome pair for:
// Sleep, Eat, TurnCW, TurnCCW, Move, Mate, Divide, and the logging/response
// -only MateResponse slot.
const NDEC = 8

// NSENSES is the length of a sense vector: 12 neighbor cells times 4
// per-cell senses, plus NACT=9 time-since-act senses, plus 3 self senses.
const NSENSES = 12*4 + 9 + 3

// FAMHIST is the size of a brain's bounded family-uid ancestry window.
const FAMHIST = 126
