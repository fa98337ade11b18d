package seq

var SetFastaRdSize = setFastaRdSize

func ResetFastaRdSize() { rdsize = defaultReadSize }
