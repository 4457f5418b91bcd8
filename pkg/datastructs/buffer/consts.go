package buffer

const (
	// headerSize is the number of bytes reserved for the length header of each record.
	headerSize = 4

	// minRingSize is the smallest region that can hold one empty record and
	// still tell full from empty.
	minRingSize = 2 * headerSize

	// maxRingSize bounds the shared region (1GB). Offsets must stay well inside uint32.
	maxRingSize = 1 << 30
)
