package commands

// ProtectedMask replaces protected attribute values in show output unless
// --show-protected is given.
const ProtectedMask = "PROTECTED"
