package vader

const (
	// (empirically derived mean sentiment intensity rating increase for using ALLCAPs to emphasize a word)
	C_INCR   = 0.733
	N_SCALAR = -0.74

	// scalars for "never so good" (two words back) and "never been so good" (three words back)
	NeverSoScalar  = 1.5
	NeverSoScalar3 = 1.25

	// dampening of booster words two and three positions away
	Distance2Scalar = 0.95
	Distance3Scalar = 0.9

	// weights around the contrastive conjunction "but"
	ButBeforeScalar = 0.5
	ButAfterScalar  = 1.5

	// (empirically derived mean sentiment intensity rating increase for exclamation points and question marks)
	ExclamationIncr = 0.292
	QuestionIncr    = 0.18
	QuestionMaxIncr = 0.96
	MaxEM           = 4
	MaxQM           = 3

	Alpha = 15 //constant for normalize

	// polarity map keys
	KeyNegative = "negative"
	KeyNeutral  = "neutral"
	KeyPositive = "positive"
	KeyCompound = "compound"
)
