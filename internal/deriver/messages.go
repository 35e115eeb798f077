package deriver

// Explanatory paragraphs served verbatim in the report's detail buckets.

const msgAgeUnderOneYear = "The domain registration for this website is relatively recent, and we advise exercising caution when purchasing or utilizing services from such a newly established site. It's noteworthy that websites associated with scams often have short lifespans, lasting only a few months before being deactivated. However, an older website doesn't necessarily guarantee safety, as some fraudulent sites can endure for years. Typically, most scam sites are dismantled within a few months due to an increase in consumer complaints, leading hosting companies to respond to numerous emails and phone calls."

const msgAgeOneToTwoYears = "The website owner has extended the domain registration for a period exceeding one year, indicating a commitment to maintaining the website for the foreseeable future. This decision has led to an elevation in the Trust Score for this website. This action is significant, as many scammers typically avoid renewing their domain names once their fraudulent activities become publicly known."

const msgAgeTwoToFiveYears = "Through our investigation, we've found that the domain for this website was registered just a few years ago. While scam websites are generally newly established, it's essential to exercise caution. In the current landscape, scammers may also acquire old and existing websites for their malicious activities. Therefore, it remains vital to thoroughly assess the website for any other signals of potential scams."

const msgAgeFiveToSevenYears = "Upon investigation, it came to our attention that the domain for this website was registered several years ago. It's noteworthy that scam websites typically tend to be quite new. However, caution is advised, as contemporary scammers may also acquire old and existing websites to initiate their malpractices. Therefore, it is crucial to conduct a comprehensive examination of the website for any other indicators of potential scams."

const msgAgeSevenYearsPlus = "The establishment of this website dates back several years, which we view as a positive indicator. Generally, the longer a website has been in existence, the more likely it is to be legitimate. Nevertheless, the age of the website does not serve as an absolute guarantee. Instances have been reported where scammers acquire existing domain names to initiate their malicious activities. Hence, it remains imperative to conduct thorough checks on websites as a precautionary measure."

const msgRegistrarKnown = "The website's domain registration is facilitated by a reputable and well-known registrar, or domain registration company. Registrars vary in their reputation and practices, the website has chosen a recognized registrar, contributing to an elevated Trust Score."

const msgSSLValid = "We have successfully identified a valid SSL certificate, which is especially reassuring for professional online stores. A reliable SSL certificate plays a vital role in ensuring secure communication between your browser and the website. While the necessity of an SSL certificate may be somewhat reduced for smaller blogs or content sites, we still recommend its implementation for an enhanced and secure online experience."

const msgSSLInvalid = "We couldn't locate a valid SSL certificate, and this is particularly worrisome for professional online stores. A reliable SSL certificate is a crucial element for ensuring secure communication between your browser and the website. While the significance of an SSL certificate may be somewhat less for smaller blogs or content sites, we recommend its implementation for a more robust and secure online experience."

const msgDomainParked = `The website seems to be in a "parked" state at the moment, suggesting that the owner is no longer using it actively. It might have been active the last time you visited.`

const msgWhoisHidden = "We see that the owner of the website is using a service to hide their identity. This may be because the owner does not want to get spammed. However, it also makes it difficult to identify the real owner of the website. As a result, websites hiding their identity get a slightly lower score."

const msgDNSBlacklisted = "the server IP address is listed in one or more Spam Database, Being listed with a DNSBL does not always indicate the IP address is a source of spam. Some DNSBL's criteria are based of the IP address' country or connection type. If you are listed with a DNSBL click on the link for removal criteria."
