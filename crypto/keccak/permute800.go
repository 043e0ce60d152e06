package keccak

import powbits "github.com/erigontech/erigon-pow/crypto/bits"

// rc32 holds the 22 round constants for Keccak-f[800]: the low 32 bits of
// the first 22 Keccak-f[1600] round constants (see the comment on rc64).
var rc32 = func() (out [22]uint32) {
	for i := range out {
		out[i] = uint32(rc64[i])
	}
	return out
}()

// permute800Generic runs the Keccak-f[800] permutation used by ProgPoW's
// seed/final hashing, as the same Theta/Rho/Pi/Chi/Iota loop as
// permute1600Generic but over 32-bit lanes and 22 rounds.
func permute800Generic(st *[25]uint32) {
	var bc [5]uint32
	for round := 0; round < 22; round++ {
		for i := 0; i < 5; i++ {
			bc[i] = st[i] ^ st[i+5] ^ st[i+10] ^ st[i+15] ^ st[i+20]
		}
		for i := 0; i < 5; i++ {
			t := bc[(i+4)%5] ^ powbits.RotL32(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				st[j+i] ^= t
			}
		}

		t := st[1]
		for i := 0; i < 24; i++ {
			j := piln[i]
			bc[0] = st[j]
			st[j] = powbits.RotL32(t, rotc[i])
			t = bc[0]
		}

		for j := 0; j < 25; j += 5 {
			for i := 0; i < 5; i++ {
				bc[i] = st[j+i]
			}
			for i := 0; i < 5; i++ {
				st[j+i] ^= (^bc[(i+1)%5]) & bc[(i+2)%5]
			}
		}

		st[0] ^= rc32[round]
	}
}

// permute800Unrolled is the fully-unrolled, lane-named variant transcribed
// from keccakf800_implementation (original_source/libcrypto/keccak.cpp).
// Must match permute800Generic bit-for-bit; see keccak_test.go.
func permute800Unrolled(state *[25]uint32) {
	var Aba, Abe, Abi, Abo, Abu uint32
	var Aga, Age, Agi, Ago, Agu uint32
	var Aka, Ake, Aki, Ako, Aku uint32
	var Ama, Ame, Ami, Amo, Amu uint32
	var Asa, Ase, Asi, Aso, Asu uint32

	var Eba, Ebe, Ebi, Ebo, Ebu uint32
	var Ega, Ege, Egi, Ego, Egu uint32
	var Eka, Eke, Eki, Eko, Eku uint32
	var Ema, Eme, Emi, Emo, Emu uint32
	var Esa, Ese, Esi, Eso, Esu uint32

	var Ba, Be, Bi, Bo, Bu uint32
	var Da, De, Di, Do, Du uint32

	rotl := powbits.RotL32

	Aba, Abe, Abi, Abo, Abu = state[0], state[1], state[2], state[3], state[4]
	Aga, Age, Agi, Ago, Agu = state[5], state[6], state[7], state[8], state[9]
	Aka, Ake, Aki, Ako, Aku = state[10], state[11], state[12], state[13], state[14]
	Ama, Ame, Ami, Amo, Amu = state[15], state[16], state[17], state[18], state[19]
	Asa, Ase, Asi, Aso, Asu = state[20], state[21], state[22], state[23], state[24]

	for round := 0; round < 22; round += 2 {
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
		Be = rotl(Age^De, 12)
		Bi = rotl(Aki^Di, 11)
		Bo = rotl(Amo^Do, 21)
		Bu = rotl(Asu^Du, 14)
		Eba = Ba ^ (^Be & Bi) ^ rc32[round]
		Ebe = Be ^ (^Bi & Bo)
		Ebi = Bi ^ (^Bo & Bu)
		Ebo = Bo ^ (^Bu & Ba)
		Ebu = Bu ^ (^Ba & Be)

		Ba = rotl(Abo^Do, 28)
		Be = rotl(Agu^Du, 20)
		Bi = rotl(Aka^Da, 3)
		Bo = rotl(Ame^De, 13)
		Bu = rotl(Asi^Di, 29)
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
		Be = rotl(Aga^Da, 4)
		Bi = rotl(Ake^De, 10)
		Bo = rotl(Ami^Di, 15)
		Bu = rotl(Aso^Do, 24)
		Ema = Ba ^ (^Be & Bi)
		Eme = Be ^ (^Bi & Bo)
		Emi = Bi ^ (^Bo & Bu)
		Emo = Bo ^ (^Bu & Ba)
		Emu = Bu ^ (^Ba & Be)

		Ba = rotl(Abi^Di, 30)
		Be = rotl(Ago^Do, 23)
		Bi = rotl(Aku^Du, 7)
		Bo = rotl(Ama^Da, 9)
		Bu = rotl(Ase^De, 2)
		Esa = Ba ^ (^Be & Bi)
		Ese = Be ^ (^Bi & Bo)
		Esi = Bi ^ (^Bo & Bu)
		Eso = Bo ^ (^Bu & Ba)
		Esu = Bu ^ (^Ba & Be)

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
		Be = rotl(Ege^De, 12)
		Bi = rotl(Eki^Di, 11)
		Bo = rotl(Emo^Do, 21)
		Bu = rotl(Esu^Du, 14)
		Aba = Ba ^ (^Be & Bi) ^ rc32[round+1]
		Abe = Be ^ (^Bi & Bo)
		Abi = Bi ^ (^Bo & Bu)
		Abo = Bo ^ (^Bu & Ba)
		Abu = Bu ^ (^Ba & Be)

		Ba = rotl(Ebo^Do, 28)
		Be = rotl(Egu^Du, 20)
		Bi = rotl(Eka^Da, 3)
		Bo = rotl(Eme^De, 13)
		Bu = rotl(Esi^Di, 29)
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
		Be = rotl(Ega^Da, 4)
		Bi = rotl(Eke^De, 10)
		Bo = rotl(Emi^Di, 15)
		Bu = rotl(Eso^Do, 24)
		Ama = Ba ^ (^Be & Bi)
		Ame = Be ^ (^Bi & Bo)
		Ami = Bi ^ (^Bo & Bu)
		Amo = Bo ^ (^Bu & Ba)
		Amu = Bu ^ (^Ba & Be)

		Ba = rotl(Ebi^Di, 30)
		Be = rotl(Ego^Do, 23)
		Bi = rotl(Eku^Du, 7)
		Bo = rotl(Ema^Da, 9)
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
