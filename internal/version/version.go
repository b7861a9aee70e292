package version

// Version is the released version of blastannot.
const Version = "0.4.0"
