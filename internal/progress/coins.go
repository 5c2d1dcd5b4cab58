package progress

const keyCoins = "arcade-coins"

// Coins returns the current balance. A missing or unreadable balance is 0.
func (s *Store) Coins() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coinsLocked()
}

func (s *Store) coinsLocked() int {
	var n int
	if !s.load(keyCoins, &n) || n < 0 {
		return 0
	}
	return n
}

// SetCoins overwrites the balance. Negative values clamp to 0.
func (s *Store) SetCoins(n int) {
	n = max(0, n)
	s.mu.Lock()
	ok := s.save(keyCoins, n)
	s.mu.Unlock()
	if ok {
		s.notify(TopicCoins)
	}
}

// AwardCoins adds amount to the balance and returns the new balance.
// Non-positive amounts are ignored.
func (s *Store) AwardCoins(amount int) int {
	s.mu.Lock()
	balance := s.coinsLocked()
	if amount <= 0 {
		s.mu.Unlock()
		return balance
	}
	ok := s.save(keyCoins, balance+amount)
	if ok {
		balance += amount
	}
	s.mu.Unlock()

	if ok {
		s.log.Debug("coins awarded", "amount", amount, "balance", balance)
		s.notify(TopicCoins)
	}
	return balance
}

// SpendCoins deducts amount when the balance covers it. It returns false,
// leaving the balance untouched, when amount is non-positive or exceeds
// the balance.
func (s *Store) SpendCoins(amount int) bool {
	s.mu.Lock()
	ok := s.spendLocked(amount)
	s.mu.Unlock()

	if ok {
		s.notify(TopicCoins)
	}
	return ok
}

func (s *Store) spendLocked(amount int) bool {
	if amount <= 0 {
		return false
	}
	balance := s.coinsLocked()
	if balance < amount {
		return false
	}
	return s.save(keyCoins, balance-amount)
}
