package keccak

import powbits "github.com/erigontech/erigon-pow/crypto/bits"

// permute1600Generic runs the Keccak-f[1600] permutation as the textbook
// Theta/Rho/Pi/Chi/Iota loop over 24 rounds, using the lane-permutation and
// rotation tables shared with the 800-bit variant.
func permute1600Generic(st *[25]uint64) {
	var bc [5]uint64
	for round := 0; round < 24; round++ {
		// Theta
		for i := 0; i < 5; i++ {
			bc[i] = st[i] ^ st[i+5] ^ st[i+10] ^ st[i+15] ^ st[i+20]
		}
		for i := 0; i < 5; i++ {
			t := bc[(i+4)%5] ^ powbits.RotL64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				st[j+i] ^= t
			}
		}

		// Rho + Pi
		t := st[1]
		for i := 0; i < 24; i++ {
			j := piln[i]
			bc[0] = st[j]
			st[j] = powbits.RotL64(t, uint(rotc[i]))
			t = bc[0]
		}

		// Chi
		for j := 0; j < 25; j += 5 {
			for i := 0; i < 5; i++ {
				bc[i] = st[j+i]
			}
			for i := 0; i < 5; i++ {
				st[j+i] ^= (^bc[(i+1)%5]) & bc[(i+2)%5]
			}
		}

		// Iota
		st[0] ^= rc64[round]
	}
}

// permute1600Unrolled is the fully-unrolled, lane-named variant transcribed
// from the reference implementation's keccakf1600_implementation
// (original_source/libcrypto/keccak.cpp). It computes the same permutation
// two rounds at a time without the inner loops, which is the shape the
// reference reserves for its BMI/BMI2-targeted code path. It must produce
// output bit-identical to permute1600Generic; keccak_test.go checks this
// directly.
func permute1600Unrolled(state *[25]uint64) {
	var Aba, Abe, Abi, Abo, Abu uint64
	var Aga, Age, Agi, Ago, Agu uint64
	var Aka, Ake, Aki, Ako, Aku uint64
	var Ama, Ame, Ami, Amo, Amu uint64
	var Asa, Ase, Asi, Aso, Asu uint64

	var Eba, Ebe, Ebi, Ebo, Ebu uint64
	var Ega, Ege, Egi, Ego, Egu uint64
	var Eka, Eke, Eki, Eko, Eku uint64
	var Ema, Eme, Emi, Emo, Emu uint64
	var Esa, Ese, Esi, Eso, Esu uint64

	var Ba, Be, Bi, Bo, Bu uint64
	var Da, De, Di, Do, Du uint64

	rotl := powbits.RotL64

	Aba, Abe, Abi, Abo, Abu = state[0], state[1], state[2], state[3], state[4]
	Aga, Age, Agi, Ago, Agu = state[5], state[6], state[7], state[8], state[9]
	Aka, Ake, Aki, Ako, Aku = state[10], state[11], state[12], state[13], state[14]
	Ama, Ame, Ami, Amo, Amu = state[15], state[16], state[17], state[18], state[19]
	Asa, Ase, Asi, Aso, Asu = state[20], state[21], state[22], state[23], state[24]

	for n := 0; n < 24; n += 2 {
		// Round n+0: Axx -> Exx
		Ba = Aba ^ Aga ^ Aka ^ Ama ^ Asa
		Be = Abe ^ Age ^ Ake ^ Ame ^ Ase
		Bi = Abi ^ Agi ^ Aki ^ Ami ^ Asi
		Bo = Abo ^ Ago ^ Ako ^ Amo ^ Aso
		Bu = Abu ^ Agu ^ Aku ^ Amu ^ Asu

		Da = Bu ^ rotl(Be, 1)
		De = Ba ^ rotl(Bi, 1)
		Di = Be ^ rotl(Bo, 1)
		Do = Bi ^ rotl(Bu, 1)
		Du = Bo ^ rotl(Ba, 1)

		Ba = Aba ^ Da
		Be = rotl(Age^De, 44)
		Bi = rotl(Aki^Di, 43)
		Bo = rotl(Amo^Do, 21)
		Bu = rotl(Asu^Du, 14)
		Eba = Ba ^ (^Be & Bi) ^ rc64[n]
		Ebe = Be ^ (^Bi & Bo)
		Ebi = Bi ^ (^Bo & Bu)
		Ebo = Bo ^ (^Bu & Ba)
		Ebu = Bu ^ (^Ba & Be)

		Ba = rotl(Abo^Do, 28)
		Be = rotl(Agu^Du, 20)
		Bi = rotl(Aka^Da, 3)
		Bo = rotl(Ame^De, 45)
		Bu = rotl(Asi^Di, 61)
		Ega = Ba ^ (^Be & Bi)
		Ege = Be ^ (^Bi & Bo)
		Egi = Bi ^ (^Bo & Bu)
		Ego = Bo ^ (^Bu & Ba)
		Egu = Bu ^ (^Ba & Be)

		Ba = rotl(Abe^De, 1)
		Be = rotl(Agi^Di, 6)
		Bi = rotl(Ako^Do, 25)
		Bo = rotl(Amu^Du, 8)
		Bu = rotl(Asa^Da, 18)
		Eka = Ba ^ (^Be & Bi)
		Eke = Be ^ (^Bi & Bo)
		Eki = Bi ^ (^Bo & Bu)
		Eko = Bo ^ (^Bu & Ba)
		Eku = Bu ^ (^Ba & Be)

		Ba = rotl(Abu^Du, 27)
		Be = rotl(Aga^Da, 36)
		Bi = rotl(Ake^De, 10)
		Bo = rotl(Ami^Di, 15)
		Bu = rotl(Aso^Do, 56)
		Ema = Ba ^ (^Be & Bi)
		Eme = Be ^ (^Bi & Bo)
		Emi = Bi ^ (^Bo & Bu)
		Emo = Bo ^ (^Bu & Ba)
		Emu = Bu ^ (^Ba & Be)

		Ba = rotl(Abi^Di, 62)
		Be = rotl(Ago^Do, 55)
		Bi = rotl(Aku^Du, 39)
		Bo = rotl(Ama^Da, 41)
		Bu = rotl(Ase^De, 2)
		Esa = Ba ^ (^Be & Bi)
		Ese = Be ^ (^Bi & Bo)
		Esi = Bi ^ (^Bo & Bu)
		Eso = Bo ^ (^Bu & Ba)
		Esu = Bu ^ (^Ba & Be)

		// Round n+1: Exx -> Axx
		Ba = Eba ^ Ega ^ Eka ^ Ema ^ Esa
		Be = Ebe ^ Ege ^ Eke ^ Eme ^ Ese
		Bi = Ebi ^ Egi ^ Eki ^ Emi ^ Esi
		Bo = Ebo ^ Ego ^ Eko ^ Emo ^ Eso
		Bu = Ebu ^ Egu ^ Eku ^ Emu ^ Esu

		Da = Bu ^ rotl(Be, 1)
		De = Ba ^ rotl(Bi, 1)
		Di = Be ^ rotl(Bo, 1)
		Do = Bi ^ rotl(Bu, 1)
		Du = Bo ^ rotl(Ba, 1)

		Ba = Eba ^ Da
		Be = rotl(Ege^De, 44)
		Bi = rotl(Eki^Di, 43)
		Bo = rotl(Emo^Do, 21)
		Bu = rotl(Esu^Du, 14)
		Aba = Ba ^ (^Be & Bi) ^ rc64[n+1]
		Abe = Be ^ (^Bi & Bo)
		Abi = Bi ^ (^Bo & Bu)
		Abo = Bo ^ (^Bu & Ba)
		Abu = Bu ^ (^Ba & Be)

		Ba = rotl(Ebo^Do, 28)
		Be = rotl(Egu^Du, 20)
		Bi = rotl(Eka^Da, 3)
		Bo = rotl(Eme^De, 45)
		Bu = rotl(Esi^Di, 61)
		Aga = Ba ^ (^Be & Bi)
		Age = Be ^ (^Bi & Bo)
		Agi = Bi ^ (^Bo & Bu)
		Ago = Bo ^ (^Bu & Ba)
		Agu = Bu ^ (^Ba & Be)

		Ba = rotl(Ebe^De, 1)
		Be = rotl(Egi^Di, 6)
		Bi = rotl(Eko^Do, 25)
		Bo = rotl(Emu^Du, 8)
		Bu = rotl(Esa^Da, 18)
		Aka = Ba ^ (^Be & Bi)
		Ake = Be ^ (^Bi & Bo)
		Aki = Bi ^ (^Bo & Bu)
		Ako = Bo ^ (^Bu & Ba)
		Aku = Bu ^ (^Ba & Be)

		Ba = rotl(Ebu^Du, 27)
		Be = rotl(Ega^Da, 36)
		Bi = rotl(Eke^De, 10)
		Bo = rotl(Emi^Di, 15)
		Bu = rotl(Eso^Do, 56)
		Ama = Ba ^ (^Be & Bi)
		Ame = Be ^ (^Bi & Bo)
		Ami = Bi ^ (^Bo & Bu)
		Amo = Bo ^ (^Bu & Ba)
		Amu = Bu ^ (^Ba & Be)

		Ba = rotl(Ebi^Di, 62)
		Be = rotl(Ego^Do, 55)
		Bi = rotl(Eku^Du, 39)
		Bo = rotl(Ema^Da, 41)
		Bu = rotl(Ese^De, 2)
		Asa = Ba ^ (^Be & Bi)
		Ase = Be ^ (^Bi & Bo)
		Asi = Bi ^ (^Bo & Bu)
		Aso = Bo ^ (^Bu & Ba)
		Asu = Bu ^ (^Ba & Be)
	}

	state[0], state[1], state[2], state[3], state[4] = Aba, Abe, Abi, Abo, Abu
	state[5], state[6], state[7], state[8], state[9] = Aga, Age, Agi, Ago, Agu
	state[10], state[11], state[12], state[13], state[14] = Aka, Ake, Aki, Ako, Aku
	state[15], state[16], state[17], state[18], state[19] = Ama, Ame, Ami, Amo, Amu
	state[20], state[21], state[22], state[23], state[24] = Asa, Ase, Asi, Aso, Asu
}
